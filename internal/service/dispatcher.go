package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/StormyDevil/azure-communication-services-solution/internal/domain/message"
	"github.com/StormyDevil/azure-communication-services-solution/internal/email"
	"github.com/StormyDevil/azure-communication-services-solution/internal/sms"
)

// ACSDispatcher routes outbox messages to the SMS or email service based
// on their channel. Sender identities come from configuration.
type ACSDispatcher struct {
	sms   *sms.Service
	email *email.Service

	fromNumber    string
	senderAddress string
}

// NewACSDispatcher creates a dispatcher delivering through both services.
func NewACSDispatcher(smsSvc *sms.Service, emailSvc *email.Service, fromNumber, senderAddress string) *ACSDispatcher {
	return &ACSDispatcher{
		sms:           smsSvc,
		email:         emailSvc,
		fromNumber:    fromNumber,
		senderAddress: senderAddress,
	}
}

// Deliver implements Dispatcher. The services report failures inside
// their envelopes; those are unwrapped back into errors here so the
// outbox can mark the message FAILED.
func (d *ACSDispatcher) Deliver(ctx context.Context, m *domain.Message) (string, string, error) {
	switch m.Channel {
	case domain.ChannelSMS:
		res := d.sms.Send(ctx, d.fromNumber, m.To, m.Content, sms.DefaultOptions())
		if !res.Success {
			return "", res.Error, errors.New(res.Error)
		}
		raw, _ := json.Marshal(res.Data)
		return res.Data.MessageID, string(raw), nil

	case domain.ChannelEmail:
		res := d.email.Send(ctx, email.Message{
			SenderAddress: d.senderAddress,
			To:            m.To,
			Subject:       m.Subject,
			PlainText:     m.Content,
		})
		if !res.Success {
			return "", res.Error, errors.New(res.Error)
		}
		raw, _ := json.Marshal(res.Data)
		return res.Data.MessageID, string(raw), nil

	default:
		return "", "", fmt.Errorf("no dispatcher for channel %q", m.Channel)
	}
}

var _ Dispatcher = (*ACSDispatcher)(nil)
