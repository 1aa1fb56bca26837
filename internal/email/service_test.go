package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/StormyDevil/azure-communication-services-solution/internal/acs"
)

// fakeClient walks through a scripted list of statuses, one per poll.
type fakeClient struct {
	beginErr error
	statuses []StatusResult
	polls    int
}

func (f *fakeClient) BeginSend(context.Context, Message) (string, error) {
	if f.beginErr != nil {
		return "", f.beginErr
	}
	return "op-123", nil
}

func (f *fakeClient) SendStatus(context.Context, string) (StatusResult, error) {
	i := f.polls
	if i >= len(f.statuses) {
		i = len(f.statuses) - 1
	}
	f.polls++
	return f.statuses[i], nil
}

func TestService_SendPollsToSuccess(t *testing.T) {
	req := require.New(t)

	fake := &fakeClient{statuses: []StatusResult{
		{OperationID: "op-123", Status: StatusNotStarted},
		{OperationID: "op-123", Status: StatusRunning},
		{OperationID: "op-123", Status: StatusSucceeded},
	}}
	svc := NewService(fake, time.Millisecond)

	res := svc.Send(context.Background(), Message{
		SenderAddress: "DoNotReply@domain.azurecomm.net",
		To:            "user@example.com",
		Subject:       "Welcome",
		PlainText:     "Hello",
	})

	req.True(res.Success)
	req.Equal("op-123", res.Data.MessageID)
	req.Equal(string(StatusSucceeded), res.Data.Status)
	req.Equal(3, fake.polls)
}

func TestService_SendFailedOperation(t *testing.T) {
	req := require.New(t)

	fake := &fakeClient{statuses: []StatusResult{
		{OperationID: "op-123", Status: StatusFailed, ErrorMessage: "domain not verified"},
	}}
	svc := NewService(fake, time.Millisecond)

	res := svc.Send(context.Background(), Message{To: "user@example.com"})
	req.False(res.Success)
	req.Contains(res.Error, "domain not verified")
}

func TestService_BeginSendFailureBecomesEnvelope(t *testing.T) {
	req := require.New(t)

	svc := NewService(&fakeClient{beginErr: errors.New("401 unauthorized")}, time.Millisecond)
	res := svc.Send(context.Background(), Message{To: "user@example.com"})

	req.False(res.Success)
	req.Contains(res.Error, "401")
}

func TestService_SendRespectsContext(t *testing.T) {
	req := require.New(t)

	// Status never becomes terminal; the context must end the poll loop.
	fake := &fakeClient{statuses: []StatusResult{{OperationID: "op-123", Status: StatusRunning}}}
	svc := NewService(fake, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	res := svc.Send(ctx, Message{To: "user@example.com"})
	req.False(res.Success)
	req.Contains(res.Error, "op-123")
}

func TestRESTClient_BeginSendAndStatus(t *testing.T) {
	req := require.New(t)

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/emails:send":
			req.NoError(json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusAccepted)
			fmt.Fprint(w, `{"id":"op-789","status":"Running"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/emails/operations/op-789":
			fmt.Fprint(w, `{"id":"op-789","status":"Succeeded"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewRESTClient(acs.NewHMACClient(acs.ConnectionString{Endpoint: srv.URL, AccessKey: []byte("key")}))

	id, err := client.BeginSend(context.Background(), Message{
		SenderAddress: "DoNotReply@domain.azurecomm.net",
		To:            "user@example.com",
		CC:            []string{"cc@example.com"},
		ReplyTo:       "replies@example.com",
		Subject:       "Test",
		PlainText:     "plain",
		HTML:          "<p>html</p>",
	})
	req.NoError(err)
	req.Equal("op-789", id)

	// Wire shape checks.
	req.Equal("DoNotReply@domain.azurecomm.net", gotBody["senderAddress"])
	recip := gotBody["recipients"].(map[string]any)
	to := recip["to"].([]any)
	req.Equal("user@example.com", to[0].(map[string]any)["address"])
	cc := recip["cc"].([]any)
	req.Equal("cc@example.com", cc[0].(map[string]any)["address"])
	cont := gotBody["content"].(map[string]any)
	req.Equal("Test", cont["subject"])
	req.Equal("<p>html</p>", cont["html"])
	replyTo := gotBody["replyTo"].([]any)
	req.Equal("replies@example.com", replyTo[0].(map[string]any)["address"])

	status, err := client.SendStatus(context.Background(), "op-789")
	req.NoError(err)
	req.Equal(StatusSucceeded, status.Status)
	req.True(status.Status.Terminal())
}
