package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []models.ContactMessage
	err      error
}

func (n *recordingNotifier) NotifyContact(ctx context.Context, message models.ContactMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return n.err
}

func validDraft() models.ContactMessage {
	return models.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Let's talk",
	}
}

func TestContactSubmitSuccess(t *testing.T) {
	store := &fakeStore[models.ContactMessage]{}
	notifier := &recordingNotifier{}
	stamp := time.Date(2026, 10, 15, 9, 30, 0, 0, time.FixedZone("EST", -5*3600))
	form := NewContactForm(store, WithNotifier(notifier), WithClock(func() time.Time { return stamp }))

	if err := form.Submit(context.Background(), validDraft()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	state := form.State()
	if state.Loading || state.Error != nil || !state.Success {
		t.Errorf("state = %+v, want success", state)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted = %d, want 1", len(store.inserted))
	}
	if got := store.inserted[0].CreatedAt; !got.Equal(stamp) || got.Location() != time.UTC {
		t.Errorf("CreatedAt = %v, want %v in UTC", got, stamp)
	}
	if len(notifier.messages) != 1 || notifier.messages[0].Email != "ada@example.com" {
		t.Errorf("notifier messages = %+v", notifier.messages)
	}
}

func TestContactSubmitStoreFailure(t *testing.T) {
	store := &fakeStore[models.ContactMessage]{insertErr: errs.NewStoreUnavailableError("insert", "contact_messages", errors.New("connection refused"))}
	notifier := &recordingNotifier{}
	form := NewContactForm(store, WithNotifier(notifier))

	err := form.Submit(context.Background(), validDraft())
	if !errs.IsStoreUnavailableError(err) {
		t.Fatalf("err = %v, want unavailable", err)
	}

	state := form.State()
	if state.Loading || state.Success || state.Error == nil {
		t.Errorf("state = %+v, want error", state)
	}
	if len(notifier.messages) != 0 {
		t.Error("a failed insert must not notify")
	}
}

func TestContactSubmitValidation(t *testing.T) {
	store := &fakeStore[models.ContactMessage]{}
	form := NewContactForm(store)

	draft := validDraft()
	draft.Email = "not-an-address"
	if err := form.Submit(context.Background(), draft); !errs.IsValidationError(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(store.inserted) != 0 {
		t.Error("invalid message must not be inserted")
	}
	if form.State().Error == nil {
		t.Error("state should carry the validation error")
	}
}

func TestContactRetryClearsError(t *testing.T) {
	store := &fakeStore[models.ContactMessage]{insertErr: errors.New("timeout")}
	form := NewContactForm(store)

	_ = form.Submit(context.Background(), validDraft())
	if form.State().Error == nil {
		t.Fatal("expected error state")
	}

	store.mu.Lock()
	store.insertErr = nil
	store.mu.Unlock()

	if err := form.Submit(context.Background(), validDraft()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if state := form.State(); state.Error != nil || !state.Success {
		t.Errorf("state = %+v, want cleared error and success", state)
	}
	if len(store.inserted) != 1 {
		t.Errorf("inserted = %d, want 1", len(store.inserted))
	}
}

func TestContactNotifierFailureKeepsSuccess(t *testing.T) {
	store := &fakeStore[models.ContactMessage]{}
	form := NewContactForm(store, WithNotifier(&recordingNotifier{err: errors.New("smtp down")}))

	if err := form.Submit(context.Background(), validDraft()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !form.State().Success {
		t.Error("notification failure must not undo a saved message")
	}
}

func TestContactDuplicatesAreIndependent(t *testing.T) {
	store := &fakeStore[models.ContactMessage]{}
	form := NewContactForm(store)

	for i := 0; i < 2; i++ {
		if err := form.Submit(context.Background(), validDraft()); err != nil {
			t.Fatalf("Submit #%d: %v", i, err)
		}
	}
	if len(store.inserted) != 2 {
		t.Errorf("inserted = %d, want 2", len(store.inserted))
	}
}

func TestContactLoadingWhileInsertInFlight(t *testing.T) {
	store := &fakeStore[models.ContactMessage]{
		insertGate:    make(chan struct{}),
		insertStarted: make(chan struct{}),
	}
	form := NewContactForm(store)

	result := make(chan error, 1)
	go func() {
		result <- form.Submit(context.Background(), validDraft())
	}()

	waitDone(t, store.insertStarted)
	if state := form.State(); !state.Loading || state.Success || state.Error != nil {
		t.Fatalf("state during insert = %+v, want loading only", state)
	}

	close(store.insertGate)
	select {
	case err := <-result:
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Submit")
	}

	if state := form.State(); state.Loading || !state.Success || state.Error != nil {
		t.Errorf("final state = %+v, want success", state)
	}
}

func TestContactRetryStartsLoadingWithoutStaleError(t *testing.T) {
	store := &fakeStore[models.ContactMessage]{insertErr: errors.New("timeout")}
	form := NewContactForm(store)
	_ = form.Submit(context.Background(), validDraft())

	store.mu.Lock()
	store.insertErr = nil
	store.mu.Unlock()
	store.insertGate = make(chan struct{})
	store.insertStarted = make(chan struct{})

	result := make(chan error, 1)
	go func() {
		result <- form.Submit(context.Background(), validDraft())
	}()

	waitDone(t, store.insertStarted)
	if state := form.State(); !state.Loading || state.Error != nil {
		t.Errorf("state during retry = %+v, want loading with error cleared", state)
	}
	close(store.insertGate)
	if err := <-result; err != nil {
		t.Fatalf("Submit: %v", err)
	}
}
