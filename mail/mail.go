// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mail

import (
	"context"
	"errors"
	"fmt"
	"html"
	netmail "net/mail"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/danielhkuo/exhibitly/models"
)

const maxMessageLength = 5000

var (
	ErrMissingRecipient = errors.New("recipient is required")
	ErrInvalidRecipient = errors.New("recipient is not a valid email address")
	ErrInvalidSender    = errors.New("email is not a valid email address")
	ErrMissingMessage   = errors.New("message is required")
	ErrMessageTooLong   = fmt.Errorf("message must be at most %d characters", maxMessageLength)
)

// Message is an outbound email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers email through the email API.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Resend sends mail through the Resend API.
type Resend struct {
	client *resend.Client
}

func NewResend(apiKey string) *Resend {
	return &Resend{client: resend.NewClient(apiKey)}
}

func (r *Resend) Send(ctx context.Context, msg Message) (string, error) {
	sent, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return sent.Id, nil
}

// ValidateContactForm trims the submitted fields and checks them.
// The recipient is either a profile username or an email address; only the
// address form is parsed here. The recipient check comes first so a form
// posted without one is always reported as such.
func ValidateContactForm(form models.ContactForm) (models.ContactForm, error) {
	form.Recipient = strings.TrimSpace(form.Recipient)
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Message = strings.TrimSpace(form.Message)

	if form.Recipient == "" {
		return form, ErrMissingRecipient
	}
	if strings.Contains(form.Recipient, "@") {
		addr, err := netmail.ParseAddress(form.Recipient)
		if err != nil {
			return form, ErrInvalidRecipient
		}
		form.Recipient = addr.Address
	}

	if form.Email != "" {
		sender, err := netmail.ParseAddress(form.Email)
		if err != nil {
			return form, ErrInvalidSender
		}
		form.Email = sender.Address
	}
	if form.Message == "" {
		return form, ErrMissingMessage
	}
	if len([]rune(form.Message)) > maxMessageLength {
		return form, ErrMessageTooLong
	}
	return form, nil
}

// ContactMessage formats a validated contact form for delivery to the artist.
func ContactMessage(from string, form models.ContactForm) Message {
	name := form.Name
	if name == "" {
		name = "Someone"
	}

	subject := fmt.Sprintf("New message from %s via Exhibitly", name)

	var text strings.Builder
	fmt.Fprintf(&text, "Name: %s\n", name)
	if form.Email != "" {
		fmt.Fprintf(&text, "Email: %s\n", form.Email)
	}
	fmt.Fprintf(&text, "\n%s\n", form.Message)

	var body strings.Builder
	body.WriteString("<h2>New contact form message</h2>")
	fmt.Fprintf(&body, "<p><strong>Name:</strong> %s</p>", html.EscapeString(name))
	if form.Email != "" {
		fmt.Fprintf(&body, "<p><strong>Email:</strong> %s</p>", html.EscapeString(form.Email))
	}
	paragraphs := strings.Split(html.EscapeString(form.Message), "\n")
	fmt.Fprintf(&body, "<p>%s</p>", strings.Join(paragraphs, "<br>"))

	return Message{
		From:    from,
		To:      []string{form.Recipient},
		ReplyTo: form.Email,
		Subject: subject,
		HTML:    body.String(),
		Text:    text.String(),
	}
}
