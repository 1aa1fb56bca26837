package handler

import (
	"encoding/json"
	"net/http"

	"github.com/StormyDevil/azure-communication-services-solution/internal/email"
	"github.com/StormyDevil/azure-communication-services-solution/internal/request"
	"github.com/StormyDevil/azure-communication-services-solution/internal/response"
	"github.com/StormyDevil/azure-communication-services-solution/internal/sms"
)

// SendHandler exposes immediate, synchronous sends over HTTP. Unlike the
// outbox endpoints these bypass the scheduler and talk to the platform
// directly, returning one operation envelope per attempt.
type SendHandler struct {
	smsSvc        *sms.Service
	emailSvc      *email.Service
	fromNumber    string
	senderAddress string
}

// NewSendHandler constructs a SendHandler. fromNumber and senderAddress are
// the configured defaults, overridable per request.
func NewSendHandler(smsSvc *sms.Service, emailSvc *email.Service, fromNumber, senderAddress string) *SendHandler {
	return &SendHandler{
		smsSvc:        smsSvc,
		emailSvc:      emailSvc,
		fromNumber:    fromNumber,
		senderAddress: senderAddress,
	}
}

// SendSMS godoc
// @Summary     Send SMS
// @Description Sends an SMS to one or more recipients and returns one result per recipient.
// @Tags        send
// @Accept      json
// @Produce     json
// @Param       request body request.SendSMSRequest true "SMS to send"
// @Success     200 {object} response.SMSSendResponse
// @Failure     400 {object} map[string]string
// @Router      /sms/send [post]
func (h *SendHandler) SendSMS(w http.ResponseWriter, r *http.Request) {
	var req request.SendSMSRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.To) == 0 {
		response.RespondError(w, http.StatusBadRequest, "at least one recipient is required")
		return
	}

	if req.Message == "" {
		response.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	from := req.From
	if from == "" {
		from = h.fromNumber
	}

	opts := sms.DefaultOptions()
	opts.Tag = req.Tag

	results := h.smsSvc.SendBulk(r.Context(), from, req.To, req.Message, opts)

	response.RespondJSON(w, http.StatusOK, response.SMSSendPayload{Results: results})
}

// SendEmail godoc
// @Summary     Send email
// @Description Sends an email and blocks until the server-side operation reaches a terminal status.
// @Tags        send
// @Accept      json
// @Produce     json
// @Param       request body request.SendEmailRequest true "Email to send"
// @Success     200 {object} response.EmailSendResponse
// @Failure     400 {object} map[string]string
// @Router      /email/send [post]
func (h *SendHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req request.SendEmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.To == "" {
		response.RespondError(w, http.StatusBadRequest, "recipient is required")
		return
	}

	if req.Body == "" {
		response.RespondError(w, http.StatusBadRequest, "body is required")
		return
	}

	sender := req.Sender
	if sender == "" {
		sender = h.senderAddress
	}

	msg := email.Message{
		SenderAddress: sender,
		To:            req.To,
		CC:            req.CC,
		BCC:           req.BCC,
		ReplyTo:       req.ReplyTo,
		Subject:       req.Subject,
	}

	if req.HTML {
		msg.HTML = req.Body
	} else {
		msg.PlainText = req.Body
	}

	res := h.emailSvc.Send(r.Context(), msg)

	response.RespondJSON(w, http.StatusOK, response.EmailSendPayload{Result: res})
}
