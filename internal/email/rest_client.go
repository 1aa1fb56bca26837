package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/StormyDevil/azure-communication-services-solution/internal/acs"
)

const apiVersion = "2023-03-31"

// RESTClient talks to the Email API through the signed ACS transport.
type RESTClient struct {
	transport *acs.Client
}

// NewRESTClient creates an email client for the given connection string transport.
func NewRESTClient(transport *acs.Client) *RESTClient {
	return &RESTClient{transport: transport}
}

type address struct {
	Address string `json:"address"`
}

type recipients struct {
	To  []address `json:"to"`
	CC  []address `json:"cc,omitempty"`
	BCC []address `json:"bcc,omitempty"`
}

type content struct {
	Subject   string `json:"subject"`
	PlainText string `json:"plainText,omitempty"`
	HTML      string `json:"html,omitempty"`
}

type sendPayload struct {
	SenderAddress string     `json:"senderAddress"`
	Recipients    recipients `json:"recipients"`
	Content       content    `json:"content"`
	ReplyTo       []address  `json:"replyTo,omitempty"`
}

type operationState struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func toAddresses(addrs []string) []address {
	if len(addrs) == 0 {
		return nil
	}
	out := make([]address, len(addrs))
	for i, a := range addrs {
		out[i] = address{Address: a}
	}
	return out
}

// BeginSend implements Client.BeginSend against POST /emails:send.
func (c *RESTClient) BeginSend(ctx context.Context, msg Message) (string, error) {
	payload := sendPayload{
		SenderAddress: msg.SenderAddress,
		Recipients: recipients{
			To:  []address{{Address: msg.To}},
			CC:  toAddresses(msg.CC),
			BCC: toAddresses(msg.BCC),
		},
		Content: content{
			Subject:   msg.Subject,
			PlainText: msg.PlainText,
			HTML:      msg.HTML,
		},
	}
	if msg.ReplyTo != "" {
		payload.ReplyTo = []address{{Address: msg.ReplyTo}}
	}

	resp, err := c.transport.Do(ctx, http.MethodPost, "/emails:send?api-version="+apiVersion, payload)
	if err != nil {
		return "", err
	}

	var state operationState
	if err := resp.Decode(&state); err != nil {
		return "", err
	}
	if state.ID == "" {
		return "", fmt.Errorf("email send response missing operation id")
	}

	return state.ID, nil
}

// SendStatus implements Client.SendStatus against GET /emails/operations/{id}.
func (c *RESTClient) SendStatus(ctx context.Context, operationID string) (StatusResult, error) {
	path := fmt.Sprintf("/emails/operations/%s?api-version=%s", operationID, apiVersion)

	resp, err := c.transport.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return StatusResult{}, err
	}

	var state operationState
	if err := resp.Decode(&state); err != nil {
		return StatusResult{}, err
	}

	out := StatusResult{OperationID: state.ID, Status: state.Status}
	if state.Error != nil {
		out.ErrorMessage = state.Error.Message
	}
	return out, nil
}

var _ Client = (*RESTClient)(nil)
