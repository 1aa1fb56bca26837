// Package sms sends text messages through the Communication Services
// SMS API and wraps every outcome in the uniform result envelope.
package sms

import "context"

// SendRequest describes a single outgoing SMS.
type SendRequest struct {
	// From is a provisioned ACS phone number in E.164 format.
	From string
	// To is the recipient phone number in E.164 format.
	To      string
	Message string
	// EnableDeliveryReport requests delivery status notifications.
	EnableDeliveryReport bool
	// Tag is an optional custom tag attached to delivery reports.
	Tag string
}

// SendResult is the per-recipient outcome reported by the SMS API.
type SendResult struct {
	MessageID      string `json:"messageId"`
	To             string `json:"to"`
	HTTPStatusCode int    `json:"httpStatusCode"`
	Successful     bool   `json:"successful"`
}

// Client is the contract for an SMS transport implementation.
type Client interface {
	// Send submits an SMS to the platform and returns its per-recipient result.
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}
