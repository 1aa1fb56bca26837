package response

import (
	"time"

	domain "github.com/StormyDevil/azure-communication-services-solution/internal/domain/message"
	"github.com/StormyDevil/azure-communication-services-solution/internal/email"
	"github.com/StormyDevil/azure-communication-services-solution/internal/result"
	"github.com/StormyDevil/azure-communication-services-solution/internal/sms"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string `json:"status"`
	// ACSConfigured reports whether a connection string was resolved.
	ACSConfigured bool `json:"acsConfigured"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type SchedulerControlPayload struct {
	Message string `json:"message"`
}

type SchedulerControlResponse struct {
	Success   bool                    `json:"success"`
	Data      SchedulerControlPayload `json:"data"`
	Timestamp string                  `json:"timestamp"`
}

// SMSSendPayload carries one operation envelope per recipient, in request
// order.
type SMSSendPayload struct {
	Results []result.Result[sms.SendResult] `json:"results"`
}

type SMSSendResponse struct {
	Success   bool           `json:"success"`
	Data      SMSSendPayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

// EmailSendPayload carries the operation envelope of a blocking email send.
type EmailSendPayload struct {
	Result result.Result[email.SendData] `json:"result"`
}

type EmailSendResponse struct {
	Success   bool             `json:"success"`
	Data      EmailSendPayload `json:"data"`
	Timestamp string           `json:"timestamp"`
}

// MessageDTO is a public-facing representation of an outbox message
// used in API responses. It decouples the wire format from
// the domain entity and plays nicely with Swagger.
type MessageDTO struct {
	ID        string     `json:"id"`
	Channel   string     `json:"channel"`
	To        string     `json:"to"`
	Subject   string     `json:"subject,omitempty"`
	Content   string     `json:"content"`
	Status    string     `json:"status"`
	MessageID string     `json:"messageId"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type EnqueuedMessageResponse struct {
	Success   bool       `json:"success"`
	Data      MessageDTO `json:"data"`
	Timestamp string     `json:"timestamp"`
}

type SentMessagesPayload struct {
	Items []MessageDTO `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

type SentMessagesResponse struct {
	Success   bool                `json:"success"`
	Data      SentMessagesPayload `json:"data"`
	Timestamp string              `json:"timestamp"`
}

// FromDomainMessage converts a domain message into its DTO.
func FromDomainMessage(m *domain.Message) MessageDTO {
	return MessageDTO{
		ID:        m.ID.String(),
		Channel:   string(m.Channel),
		To:        m.To,
		Subject:   m.Subject,
		Content:   m.Content,
		Status:    string(m.Status),
		MessageID: m.MessageID,
		SentAt:    m.SentAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainMessages converts domain messages into DTOs
// for use in HTTP responses.
func FromDomainMessages(msgs []*domain.Message) []MessageDTO {
	out := make([]MessageDTO, len(msgs))
	for i, m := range msgs {
		out[i] = FromDomainMessage(m)
	}
	return out
}
