package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     services.Store[models.ContactMessage]
	notifier  services.ContactNotifier
}

func newContactHandler(store services.Store[models.ContactMessage], notifier services.ContactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		notifier:  notifier,
	}
}

// submitContact stores a contact message
// @Summary Submit contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body models.ContactMessage true "Name, email, subject and message"
// @Success 201 {object} services.ContactState
// @Failure 400 {object} services.ContactState "Invalid message"
// @Failure 502 {object} services.ContactState "Store rejected the message"
// @Failure 503 {object} services.ContactState "Store unreachable"
// @Router /contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft models.ContactMessage
		if err := decodeJSON(w, r, "contact message", &draft); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var opts []services.ContactOption
		if h.notifier != nil {
			opts = append(opts, services.WithNotifier(h.notifier))
		}
		form := services.NewContactForm(h.store, opts...)

		if err := form.Submit(r.Context(), draft); err != nil {
			h.responder.WriteJSONStatus(w, statusOf(err), form.State())
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, form.State())
	}
}
