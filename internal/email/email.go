// Package email sends transactional email through the Communication
// Services Email API. Sending is a long-running server-side operation:
// the service accepts the message, returns an operation id, and the
// caller polls until a terminal status is reached.
package email

import "context"

// Message is a single outgoing email. At least one of PlainText and HTML
// must be set; senders must belong to a verified domain.
type Message struct {
	SenderAddress string
	To            string
	CC            []string
	BCC           []string
	ReplyTo       string
	Subject       string
	PlainText     string
	HTML          string
}

// Status is the server-side state of a send operation.
type Status string

const (
	StatusNotStarted Status = "NotStarted"
	StatusRunning    Status = "Running"
	StatusSucceeded  Status = "Succeeded"
	StatusFailed     Status = "Failed"
	StatusCanceled   Status = "Canceled"
)

// Terminal reports whether the operation has finished, one way or the other.
func (s Status) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusCanceled:
		return true
	default:
		return false
	}
}

// StatusResult is one observation of a send operation.
type StatusResult struct {
	OperationID string
	Status      Status
	// ErrorMessage is set when the operation failed.
	ErrorMessage string
}

// Client is the contract for an email transport implementation.
type Client interface {
	// BeginSend submits the message and returns the operation id to poll.
	BeginSend(ctx context.Context, msg Message) (string, error)

	// SendStatus fetches the current state of a send operation.
	SendStatus(ctx context.Context, operationID string) (StatusResult, error)
}
