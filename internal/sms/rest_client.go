package sms

import (
	"context"
	"fmt"
	"net/http"

	"github.com/StormyDevil/azure-communication-services-solution/internal/acs"
)

const apiVersion = "2021-03-07"

// RESTClient sends SMS messages through the signed ACS REST transport.
type RESTClient struct {
	transport *acs.Client
}

// NewRESTClient creates an SMS client for the given connection string transport.
func NewRESTClient(transport *acs.Client) *RESTClient {
	return &RESTClient{transport: transport}
}

type sendRecipient struct {
	To string `json:"to"`
}

type sendOptions struct {
	EnableDeliveryReport bool   `json:"enableDeliveryReport"`
	Tag                  string `json:"tag,omitempty"`
}

type sendPayload struct {
	From           string          `json:"from"`
	SMSRecipients  []sendRecipient `json:"smsRecipients"`
	Message        string          `json:"message"`
	SMSSendOptions sendOptions     `json:"smsSendOptions"`
}

type sendResponse struct {
	Value []struct {
		To             string `json:"to"`
		MessageID      string `json:"messageId"`
		HTTPStatusCode int    `json:"httpStatusCode"`
		Successful     bool   `json:"successful"`
		ErrorMessage   string `json:"errorMessage"`
	} `json:"value"`
}

// Send implements Client.Send against POST /sms.
func (c *RESTClient) Send(ctx context.Context, req SendRequest) (SendResult, error) {
	payload := sendPayload{
		From:          req.From,
		SMSRecipients: []sendRecipient{{To: req.To}},
		Message:       req.Message,
		SMSSendOptions: sendOptions{
			EnableDeliveryReport: req.EnableDeliveryReport,
			Tag:                  req.Tag,
		},
	}

	resp, err := c.transport.Do(ctx, http.MethodPost, "/sms?api-version="+apiVersion, payload)
	if err != nil {
		return SendResult{}, err
	}

	var parsed sendResponse
	if err := resp.Decode(&parsed); err != nil {
		return SendResult{}, err
	}
	if len(parsed.Value) == 0 {
		return SendResult{}, fmt.Errorf("sms response has no recipient results")
	}

	r := parsed.Value[0]
	return SendResult{
		MessageID:      r.MessageID,
		To:             r.To,
		HTTPStatusCode: r.HTTPStatusCode,
		Successful:     r.Successful,
	}, nil
}

var _ Client = (*RESTClient)(nil)
