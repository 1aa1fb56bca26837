package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeIdentity struct {
	token UserToken
	err   error
}

func (f *fakeIdentity) CreateUserAndToken(_ context.Context, scopes []string) (UserToken, error) {
	if f.err != nil {
		return UserToken{}, f.err
	}
	return f.token, nil
}

type fakeThreads struct {
	calls        int
	thread       Thread
	participants []Participant
	messages     []Message
}

func (f *fakeThreads) CreateThread(_ context.Context, topic string, participants []Participant) (Thread, error) {
	f.calls++
	f.participants = participants
	t := f.thread
	t.Topic = topic
	return t, nil
}

func (f *fakeThreads) SendMessage(_ context.Context, threadID, content, displayName string) (string, error) {
	f.calls++
	return "msg-1", nil
}

func (f *fakeThreads) ListMessages(_ context.Context, threadID string, max int) ([]Message, error) {
	f.calls++
	if max > 0 && max < len(f.messages) {
		return f.messages[:max], nil
	}
	return f.messages, nil
}

func newTestSession(threads *fakeThreads, identity IdentityClient) *Session {
	s := NewSession("https://res.communication.azure.com", identity)
	s.newThreadClient = func(endpoint, token string) ThreadClient { return threads }
	return s
}

func TestSession_OperationsBeforeInitFailDeterministically(t *testing.T) {
	req := require.New(t)

	threads := &fakeThreads{}
	s := newTestSession(threads, &fakeIdentity{})

	req.Equal(StateUninitialized, s.State())

	thread := s.CreateThread(context.Background(), "topic", []string{"u1"})
	req.False(thread.Success)
	req.Equal("Chat client not initialized", thread.Error)

	msg := s.SendMessage(context.Background(), "thread-1", "hi", "")
	req.False(msg.Success)
	req.Equal("Chat client not initialized", msg.Error)

	list := s.GetMessages(context.Background(), "thread-1", 10)
	req.False(list.Success)
	req.Equal("Chat client not initialized", list.Error)

	req.Zero(threads.calls, "no transport call may happen before initialization")
}

func TestSession_Lifecycle(t *testing.T) {
	req := require.New(t)

	expires := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	identity := &fakeIdentity{token: UserToken{
		UserID:    "8:acs:user-1",
		Token:     "jwt-token",
		ExpiresOn: expires,
	}}
	threads := &fakeThreads{thread: Thread{ID: "19:thread@thread.v2", CreatedOn: expires}}
	s := newTestSession(threads, identity)

	user := s.CreateUserAndToken(context.Background())
	req.True(user.Success)
	req.Equal("8:acs:user-1", user.Data.UserID)
	req.Equal("jwt-token", user.Data.Token)
	req.Equal(expires.Format(time.RFC3339), user.Data.ExpiresOn)
	req.Equal(StateIdentityCreated, s.State())

	s.InitializeChatClient(user.Data.Token)
	req.Equal(StateClientReady, s.State())

	thread := s.CreateThread(context.Background(), "standup", []string{"8:acs:user-1", "8:acs:user-2"})
	req.True(thread.Success)
	req.Equal("19:thread@thread.v2", thread.Data.ThreadID)
	req.Equal("standup", thread.Data.Topic)

	// Display names are positional.
	req.Len(threads.participants, 2)
	req.Equal("User-1", threads.participants[0].DisplayName)
	req.Equal("User-2", threads.participants[1].DisplayName)

	msg := s.SendMessage(context.Background(), thread.Data.ThreadID, "hello", "")
	req.True(msg.Success)
	req.Equal("msg-1", msg.Data.MessageID)
}

func TestSession_CreateUserAndTokenFailure(t *testing.T) {
	req := require.New(t)

	s := newTestSession(&fakeThreads{}, &fakeIdentity{err: errors.New("identity quota exceeded")})

	res := s.CreateUserAndToken(context.Background())
	req.False(res.Success)
	req.Contains(res.Error, "quota")
	req.Equal(StateUninitialized, s.State())
}

func TestSession_GetMessagesHonoursCap(t *testing.T) {
	req := require.New(t)

	threads := &fakeThreads{messages: []Message{
		{ID: "5"}, {ID: "4"}, {ID: "3"}, {ID: "2"}, {ID: "1"},
	}}
	s := newTestSession(threads, &fakeIdentity{})
	s.InitializeChatClient("tok")

	res := s.GetMessages(context.Background(), "thread-1", 2)
	req.True(res.Success)
	req.Equal(2, res.Data.Count)
	req.Len(res.Data.Messages, 2)
	req.Equal("5", res.Data.Messages[0].ID)
	req.Equal("4", res.Data.Messages[1].ID)
}
