package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/StormyDevil/azure-communication-services-solution/internal/domain/message"
	"github.com/StormyDevil/azure-communication-services-solution/internal/email"
	"github.com/StormyDevil/azure-communication-services-solution/internal/sms"
)

// fakeMessageService records Enqueue calls and serves canned sent pages.
type fakeMessageService struct {
	enqueued []*domain.Message
	sent     []*domain.Message
	err      error
}

func (f *fakeMessageService) Enqueue(_ context.Context, channel domain.Channel, to, subject, content string) (*domain.Message, error) {
	m, err := domain.NewMessage(channel, to, subject, content)
	if err != nil {
		return nil, err
	}
	f.enqueued = append(f.enqueued, m)
	return m, nil
}

func (f *fakeMessageService) GetSent(_ context.Context, _, _ int) ([]*domain.Message, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.sent, int64(len(f.sent)), nil
}

func (f *fakeMessageService) ProcessBatch(context.Context) error { return nil }

// fakeScheduler flips running state and can be forced to fail.
type fakeScheduler struct {
	running bool
	err     error
}

func (f *fakeScheduler) Start() error {
	if f.err != nil {
		return f.err
	}
	f.running = true
	return nil
}

func (f *fakeScheduler) Stop() error {
	if f.err != nil {
		return f.err
	}
	f.running = false
	return nil
}

func (f *fakeScheduler) IsRunning() bool { return f.running }

type stubSMSClient struct{ err error }

func (s *stubSMSClient) Send(_ context.Context, req sms.SendRequest) (sms.SendResult, error) {
	if s.err != nil {
		return sms.SendResult{}, s.err
	}
	return sms.SendResult{MessageID: "sms-1", To: req.To, HTTPStatusCode: 202, Successful: true}, nil
}

type stubEmailClient struct{}

func (s *stubEmailClient) BeginSend(context.Context, email.Message) (string, error) {
	return "op-1", nil
}

func (s *stubEmailClient) SendStatus(_ context.Context, id string) (email.StatusResult, error) {
	return email.StatusResult{OperationID: id, Status: email.StatusSucceeded}, nil
}

// envelope mirrors the wire shape of every API response.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Timestamp string `json:"timestamp"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotEmpty(t, env.Timestamp)
	return env
}

func TestHealthReportsACSConfigured(t *testing.T) {
	h := NewHomeHandler(true)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	var payload struct {
		Status        string `json:"status"`
		ACSConfigured bool   `json:"acsConfigured"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.Equal(t, "ok", payload.Status)
	require.True(t, payload.ACSConfigured)
}

func TestEnqueueMessage(t *testing.T) {
	svc := &fakeMessageService{}
	h := NewMessageHandler(svc, &fakeScheduler{})

	body := `{"channel":"EMAIL","to":"user@example.com","subject":"Hi","content":"hello"}`
	rec := httptest.NewRecorder()
	h.EnqueueMessage(rec, httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)
	require.Len(t, svc.enqueued, 1)
	require.Equal(t, domain.ChannelEmail, svc.enqueued[0].Channel)
}

func TestEnqueueMessageRejectsUnknownChannel(t *testing.T) {
	h := NewMessageHandler(&fakeMessageService{}, &fakeScheduler{})

	body := `{"channel":"FAX","to":"user@example.com","content":"hello"}`
	rec := httptest.NewRecorder()
	h.EnqueueMessage(rec, httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
}

func TestEnqueueMessageRejectsBadJSON(t *testing.T) {
	h := NewMessageHandler(&fakeMessageService{}, &fakeScheduler{})

	rec := httptest.NewRecorder()
	h.EnqueueMessage(rec, httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader("{")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSentMessages(t *testing.T) {
	m, err := domain.NewMessage(domain.ChannelSMS, "+14255550123", "", "hello")
	require.NoError(t, err)
	m.MarkSent("ext-1", "")

	svc := &fakeMessageService{sent: []*domain.Message{m}}
	h := NewMessageHandler(svc, &fakeScheduler{})

	rec := httptest.NewRecorder()
	h.GetSentMessages(rec, httptest.NewRequest(http.MethodGet, "/messages/sent?page=1&limit=10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	var payload struct {
		Items []struct {
			Channel   string `json:"channel"`
			MessageID string `json:"messageId"`
		} `json:"items"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.Equal(t, int64(1), payload.Total)
	require.Equal(t, "SMS", payload.Items[0].Channel)
	require.Equal(t, "ext-1", payload.Items[0].MessageID)
}

func TestSchedulerControl(t *testing.T) {
	sch := &fakeScheduler{}
	h := NewMessageHandler(&fakeMessageService{}, sch)

	rec := httptest.NewRecorder()
	h.StartStopScheduler(rec, httptest.NewRequest(http.MethodPost, "/scheduler", strings.NewReader(`{"action":"start"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, sch.running)

	rec = httptest.NewRecorder()
	h.StartStopScheduler(rec, httptest.NewRequest(http.MethodPost, "/scheduler", strings.NewReader(`{"action":"stop"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, sch.running)

	rec = httptest.NewRecorder()
	h.StartStopScheduler(rec, httptest.NewRequest(http.MethodPost, "/scheduler", strings.NewReader(`{"action":"pause"}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendSMS(t *testing.T) {
	smsSvc := sms.NewService(&stubSMSClient{})
	emailSvc := email.NewService(&stubEmailClient{}, time.Millisecond)
	h := NewSendHandler(smsSvc, emailSvc, "+14255550100", "noreply@example.com")

	body := `{"to":["+14255550123","+14255550124"],"message":"hello"}`
	rec := httptest.NewRecorder()
	h.SendSMS(rec, httptest.NewRequest(http.MethodPost, "/sms/send", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	var payload struct {
		Results []struct {
			Success bool `json:"success"`
			Data    struct {
				To string `json:"to"`
			} `json:"data"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.Len(t, payload.Results, 2)
	require.True(t, payload.Results[0].Success)
	require.Equal(t, "+14255550123", payload.Results[0].Data.To)
}

func TestSendSMSPartialFailureStillOK(t *testing.T) {
	smsSvc := sms.NewService(&stubSMSClient{err: errors.New("throttled")})
	emailSvc := email.NewService(&stubEmailClient{}, time.Millisecond)
	h := NewSendHandler(smsSvc, emailSvc, "+14255550100", "noreply@example.com")

	body := `{"to":["+14255550123"],"message":"hello"}`
	rec := httptest.NewRecorder()
	h.SendSMS(rec, httptest.NewRequest(http.MethodPost, "/sms/send", strings.NewReader(body)))

	// Per-recipient failures live inside the payload, not the HTTP status.
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Results []struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		} `json:"results"`
	}
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.False(t, payload.Results[0].Success)
	require.Contains(t, payload.Results[0].Error, "throttled")
}

func TestSendSMSValidation(t *testing.T) {
	smsSvc := sms.NewService(&stubSMSClient{})
	emailSvc := email.NewService(&stubEmailClient{}, time.Millisecond)
	h := NewSendHandler(smsSvc, emailSvc, "+14255550100", "noreply@example.com")

	rec := httptest.NewRecorder()
	h.SendSMS(rec, httptest.NewRequest(http.MethodPost, "/sms/send", strings.NewReader(`{"message":"hi"}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.SendSMS(rec, httptest.NewRequest(http.MethodPost, "/sms/send", strings.NewReader(`{"to":["+1"]}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendEmail(t *testing.T) {
	smsSvc := sms.NewService(&stubSMSClient{})
	emailSvc := email.NewService(&stubEmailClient{}, time.Millisecond)
	h := NewSendHandler(smsSvc, emailSvc, "+14255550100", "noreply@example.com")

	body := `{"to":"user@example.com","subject":"Hi","body":"hello"}`
	rec := httptest.NewRecorder()
	h.SendEmail(rec, httptest.NewRequest(http.MethodPost, "/email/send", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	var payload struct {
		Result struct {
			Success bool `json:"success"`
			Data    struct {
				MessageID string `json:"messageId"`
				Status    string `json:"status"`
			} `json:"data"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.True(t, payload.Result.Success)
	require.Equal(t, "op-1", payload.Result.Data.MessageID)
	require.Equal(t, "Succeeded", payload.Result.Data.Status)
}
