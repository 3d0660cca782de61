package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ResendNotifier e-mails the site owner about new contact messages.
type ResendNotifier struct {
	APIKey     string
	From       string
	Recipients []string
	Endpoint   string
	client     *http.Client
}

// NewResendNotifierFromConfig reads RESEND_API_KEY, RESEND_FROM_EMAIL and
// CONTACT_NOTIFY_EMAIL. It returns nil when any of them is unset, which
// leaves contact notifications off.
func NewResendNotifierFromConfig(cfg map[string]string) *ResendNotifier {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	from := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	recipients := config.GetStrings(cfg, "CONTACT_NOTIFY_EMAIL")
	if apiKey == "" || from == "" || len(recipients) == 0 {
		return nil
	}
	return &ResendNotifier{
		APIKey:     apiKey,
		From:       from,
		Recipients: recipients,
		Endpoint:   resendEndpoint,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (n *ResendNotifier) NotifyContact(ctx context.Context, message models.ContactMessage) error {
	subject := fmt.Sprintf("New contact message: %s", message.Subject)
	body := fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;</p><p><strong>Subject:</strong> %s</p><p>%s</p><p><small>Received %s</small></p>",
		html.EscapeString(message.Name),
		html.EscapeString(message.Email),
		html.EscapeString(message.Subject),
		html.EscapeString(message.Message),
		message.CreatedAt.Format(time.RFC1123),
	)
	return n.SendEmail(ctx, ResendEmailRequest{
		From:    n.From,
		To:      n.Recipients,
		Subject: subject,
		Html:    body,
		ReplyTo: message.Email,
	})
}

// SendEmail posts one e-mail to the Resend API.
func (n *ResendNotifier) SendEmail(ctx context.Context, payload ResendEmailRequest) error {
	if len(payload.To) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.Endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := n.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}
