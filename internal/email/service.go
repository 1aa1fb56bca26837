package email

import (
	"context"
	"fmt"
	"time"

	"github.com/StormyDevil/azure-communication-services-solution/internal/result"
)

const defaultPollInterval = 2 * time.Second

// SendData is the envelope payload of a completed send.
type SendData struct {
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
}

// Service exposes envelope-returning email operations. Send blocks until
// the server-side operation reaches a terminal status.
type Service struct {
	client       Client
	pollInterval time.Duration
}

// NewService creates an email service. A non-positive pollInterval falls
// back to the default.
func NewService(client Client, pollInterval time.Duration) *Service {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Service{client: client, pollInterval: pollInterval}
}

// Send submits the message and polls the operation to completion. The
// returned envelope carries the operation id as message id, mirroring the
// platform's response shape.
func (s *Service) Send(ctx context.Context, msg Message) result.Result[SendData] {
	return result.Of(func() (SendData, error) {
		operationID, err := s.client.BeginSend(ctx, msg)
		if err != nil {
			return SendData{}, err
		}

		status, err := s.pollUntilDone(ctx, operationID)
		if err != nil {
			return SendData{}, err
		}

		if status.Status != StatusSucceeded {
			if status.ErrorMessage != "" {
				return SendData{}, fmt.Errorf("email send %s: %s", status.Status, status.ErrorMessage)
			}
			return SendData{}, fmt.Errorf("email send finished with status %s", status.Status)
		}

		return SendData{MessageID: operationID, Status: string(status.Status)}, nil
	})
}

// SendHTML sends an HTML-formatted email to a single recipient.
func (s *Service) SendHTML(ctx context.Context, sender, recipient, subject, htmlBody string) result.Result[SendData] {
	return s.Send(ctx, Message{
		SenderAddress: sender,
		To:            recipient,
		Subject:       subject,
		HTML:          htmlBody,
	})
}

// pollUntilDone checks the operation status on a fixed interval until it
// is terminal or the context ends. The first check happens immediately;
// the platform often reports a terminal status on the first poll.
func (s *Service) pollUntilDone(ctx context.Context, operationID string) (StatusResult, error) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		status, err := s.client.SendStatus(ctx, operationID)
		if err != nil {
			return StatusResult{}, err
		}
		if status.Status.Terminal() {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return StatusResult{}, fmt.Errorf("waiting for email operation %s: %w", operationID, ctx.Err())
		case <-ticker.C:
		}
	}
}
