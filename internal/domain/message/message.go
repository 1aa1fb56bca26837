// Package message holds the domain model and invariants for outbox messages.
package message

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxContentLength is the maximum allowed length for message content.
	MaxContentLength = 4096
)

// Channel selects which Communication Services API delivers the message.
type Channel string

const (
	ChannelSMS   Channel = "SMS"
	ChannelEmail Channel = "EMAIL"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

var (
	// ErrUnknownChannel is returned for a channel other than SMS or EMAIL.
	ErrUnknownChannel = errors.New("unknown delivery channel")
	// ErrEmptyRecipient is returned when no recipient is provided.
	ErrEmptyRecipient = errors.New("recipient is required")
	// ErrEmptyContent is returned when the message body is empty.
	ErrEmptyContent = errors.New("message content is required")
	// ErrContentTooLong is returned when the message body exceeds MaxContentLength.
	ErrContentTooLong = errors.New("message content exceeds maximum length")
	// ErrMissingSubject is returned when an email message has no subject.
	ErrMissingSubject = errors.New("email messages require a subject")
)

// Message is the core domain entity representing an outgoing SMS or email
// waiting in the outbox.
type Message struct {
	ID      uuid.UUID
	Channel Channel
	// To is a phone number (SMS) or email address (EMAIL).
	To      string
	Subject string
	Content string
	Status  Status
	// MessageID is the platform-assigned id after a successful delivery.
	MessageID   string
	RawResponse string
	SentAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewMessage constructs a new pending Message and enforces basic domain rules.
func NewMessage(channel Channel, to, subject, content string) (*Message, error) {
	to = strings.TrimSpace(to)
	subject = strings.TrimSpace(subject)
	content = strings.TrimSpace(content)

	switch channel {
	case ChannelSMS, ChannelEmail:
	default:
		return nil, ErrUnknownChannel
	}

	if to == "" {
		return nil, ErrEmptyRecipient
	}
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}
	if channel == ChannelEmail && subject == "" {
		return nil, ErrMissingSubject
	}

	return &Message{
		ID:        uuid.New(),
		Channel:   channel,
		To:        to,
		Subject:   subject,
		Content:   content,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}, nil
}

// MarkSent marks the message as successfully delivered and records the
// platform-assigned message id.
func (m *Message) MarkSent(msgID string, raw string) {
	now := time.Now()
	m.SentAt = &now
	m.Status = StatusSuccess
	m.MessageID = msgID
	m.RawResponse = raw
}

// MarkFailed marks the message as failed and stores the failure detail.
func (m *Message) MarkFailed(raw string) {
	m.Status = StatusFailed
	m.RawResponse = raw
}
