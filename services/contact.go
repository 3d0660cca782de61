package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/models"
)

// ContactState is the {loading, error, success} view of a contact form.
type ContactState struct {
	Loading bool    `json:"loading"`
	Error   *string `json:"error"`
	Success bool    `json:"success"`
}

// ContactNotifier is told about every confirmed contact message.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, message models.ContactMessage) error
}

type ContactOption func(*ContactForm)

func WithNotifier(notifier ContactNotifier) ContactOption {
	return func(f *ContactForm) {
		f.notifier = notifier
	}
}

func WithClock(now func() time.Time) ContactOption {
	return func(f *ContactForm) {
		f.now = now
	}
}

// ContactForm submits contact messages. It never reads them back and does
// not deduplicate: each Submit is an independent insert.
type ContactForm struct {
	store    Store[models.ContactMessage]
	notifier ContactNotifier
	now      func() time.Time
	logger   zerolog.Logger

	mu    sync.RWMutex
	state ContactState
}

func NewContactForm(store Store[models.ContactMessage], opts ...ContactOption) *ContactForm {
	f := &ContactForm{
		store:  store,
		now:    time.Now,
		logger: log.With().Str("component", "contactForm").Logger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *ContactForm) State() ContactState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Submit stamps the message with its creation time and inserts it. Error and
// success are cleared at the start of every attempt.
func (f *ContactForm) Submit(ctx context.Context, draft models.ContactMessage) error {
	f.setState(ContactState{Loading: true})

	message := models.ContactMessage{
		Name:    draft.Name,
		Email:   draft.Email,
		Subject: draft.Subject,
		Message: draft.Message,
	}
	message.Normalize()

	err := message.Validate()
	if err == nil {
		message.CreatedAt = f.now().UTC()
		err = f.store.InsertOne(ctx, &message)
	}
	if err != nil {
		msg := err.Error()
		f.setState(ContactState{Error: &msg})
		f.logger.Warn().Err(err).Msg("contact message not saved")
		return err
	}

	f.setState(ContactState{Success: true})
	f.logger.Info().Str("messageId", message.ID.String()).Msg("contact message saved")

	if f.notifier != nil {
		if err := f.notifier.NotifyContact(ctx, message); err != nil {
			f.logger.Error().Err(err).Str("messageId", message.ID.String()).Msg("failed to send contact notification")
		}
	}
	return nil
}

func (f *ContactForm) setState(state ContactState) {
	f.mu.Lock()
	f.state = state
	f.mu.Unlock()
}
