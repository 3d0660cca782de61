package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// fakeStore is an in-memory Store. A non-nil gate makes ReadAll block until
// the gate is closed, regardless of ctx, like a store that ignores cancellation.
// insertGate does the same for InsertOne, which closes insertStarted first.
type fakeStore[T any] struct {
	mu            sync.Mutex
	records       []T
	readErr       error
	insertErr     error
	gate          chan struct{}
	returned      chan struct{}
	insertGate    chan struct{}
	insertStarted chan struct{}
	assign        func(*T)
	orders        []database.Order
	inserted      []T
}

func (s *fakeStore[T]) ReadAll(ctx context.Context, order database.Order) ([]T, error) {
	s.mu.Lock()
	s.orders = append(s.orders, order)
	gate := s.gate
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if s.returned != nil {
		defer close(s.returned)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *fakeStore[T]) InsertOne(ctx context.Context, record *T) error {
	if s.insertStarted != nil {
		close(s.insertStarted)
	}
	if s.insertGate != nil {
		<-s.insertGate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return s.insertErr
	}
	if s.assign != nil {
		s.assign(record)
	}
	s.inserted = append(s.inserted, *record)
	s.records = append(s.records, *record)
	return nil
}

func (s *fakeStore[T]) lastOrder() database.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.orders) == 0 {
		return database.Order{}
	}
	return s.orders[len(s.orders)-1]
}

type fakeStores struct {
	projects   *fakeStore[models.Project]
	skills     *fakeStore[models.Skill]
	experience *fakeStore[models.Experience]
	education  *fakeStore[models.Education]
	contact    *fakeStore[models.ContactMessage]
}

func newFakeStores() fakeStores {
	return fakeStores{
		projects:   &fakeStore[models.Project]{},
		skills:     &fakeStore[models.Skill]{},
		experience: &fakeStore[models.Experience]{},
		education:  &fakeStore[models.Education]{},
		contact:    &fakeStore[models.ContactMessage]{},
	}
}

func (f fakeStores) stores() Stores {
	return Stores{
		Projects:        f.projects,
		Skills:          f.skills,
		Experience:      f.experience,
		Education:       f.education,
		ContactMessages: f.contact,
	}
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for accessor")
	}
}

func settle(t *testing.T, site *Site) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := site.WaitSettled(ctx); err != nil {
		t.Fatalf("WaitSettled: %v", err)
	}
}
