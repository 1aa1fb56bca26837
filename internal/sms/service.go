package sms

import (
	"context"

	"github.com/StormyDevil/azure-communication-services-solution/internal/result"
)

// Options tune a send without being part of the message itself.
type Options struct {
	EnableDeliveryReport bool
	Tag                  string
}

// DefaultOptions enables delivery reports.
func DefaultOptions() Options {
	return Options{EnableDeliveryReport: true}
}

// Service exposes envelope-returning SMS operations on top of a Client.
type Service struct {
	client Client
}

// NewService creates an SMS service backed by the given transport client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Send delivers one SMS and reports the outcome as an envelope; transport
// failures never escape as errors.
func (s *Service) Send(ctx context.Context, from, to, message string, opts Options) result.Result[SendResult] {
	return result.Of(func() (SendResult, error) {
		return s.client.Send(ctx, SendRequest{
			From:                 from,
			To:                   to,
			Message:              message,
			EnableDeliveryReport: opts.EnableDeliveryReport,
			Tag:                  opts.Tag,
		})
	})
}

// SendBulk sends the same message to every recipient sequentially and
// returns one envelope per recipient in input order. A failed recipient
// does not stop the rest.
func (s *Service) SendBulk(ctx context.Context, from string, to []string, message string, opts Options) []result.Result[SendResult] {
	results := make([]result.Result[SendResult], 0, len(to))
	for _, recipient := range to {
		results = append(results, s.Send(ctx, from, recipient, message, opts))
	}
	return results
}
