package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/StormyDevil/azure-communication-services-solution/internal/result"
)

// errNotInitialized is the fixed precondition error returned by thread
// operations before InitializeChatClient. It never reaches the network.
const errNotInitialized = "Chat client not initialized"

// State tracks the session lifecycle. There is no transition back to
// Uninitialized; the session does not support token refresh.
type State int

const (
	StateUninitialized State = iota
	StateIdentityCreated
	StateClientReady
)

// ThreadClientFactory builds a thread client for an issued token.
// Injected so tests can substitute a fake transport.
type ThreadClientFactory func(endpoint, accessToken string) ThreadClient

// Session drives the chat flow for one user: issue an identity and token,
// initialize the thread client with it, then operate on threads. All
// operations return envelopes.
type Session struct {
	endpoint        string
	identity        IdentityClient
	newThreadClient ThreadClientFactory

	state   State
	threads ThreadClient
}

// NewSession creates an uninitialized session against the given resource
// endpoint.
func NewSession(endpoint string, identity IdentityClient) *Session {
	return &Session{
		endpoint: endpoint,
		identity: identity,
		newThreadClient: func(endpoint, accessToken string) ThreadClient {
			return NewThreadRESTClient(endpoint, accessToken)
		},
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// UserTokenData is the envelope payload of CreateUserAndToken.
type UserTokenData struct {
	UserID    string `json:"userId"`
	Token     string `json:"token"`
	ExpiresOn string `json:"expiresOn"`
}

// CreateUserAndToken creates a communication user and a chat-scoped token.
func (s *Session) CreateUserAndToken(ctx context.Context) result.Result[UserTokenData] {
	return result.Of(func() (UserTokenData, error) {
		token, err := s.identity.CreateUserAndToken(ctx, []string{ScopeChat})
		if err != nil {
			return UserTokenData{}, err
		}

		if s.state == StateUninitialized {
			s.state = StateIdentityCreated
		}

		return UserTokenData{
			UserID:    token.UserID,
			Token:     token.Token,
			ExpiresOn: token.ExpiresOn.Format(time.RFC3339),
		}, nil
	})
}

// InitializeChatClient builds the thread client with the given access
// token, moving the session to Client-Ready.
func (s *Session) InitializeChatClient(accessToken string) {
	s.threads = s.newThreadClient(s.endpoint, accessToken)
	s.state = StateClientReady
}

// ThreadData is the envelope payload of CreateThread.
type ThreadData struct {
	ThreadID  string `json:"threadId"`
	Topic     string `json:"topic"`
	CreatedOn string `json:"createdOn"`
}

// CreateThread creates a thread with the given participants; display
// names are assigned positionally (User-1, User-2, ...).
func (s *Session) CreateThread(ctx context.Context, topic string, participantIDs []string) result.Result[ThreadData] {
	if s.state != StateClientReady {
		return result.Errf[ThreadData](errNotInitialized)
	}

	return result.Of(func() (ThreadData, error) {
		participants := make([]Participant, len(participantIDs))
		for i, id := range participantIDs {
			participants[i] = Participant{
				UserID:      id,
				DisplayName: fmt.Sprintf("User-%d", i+1),
			}
		}

		thread, err := s.threads.CreateThread(ctx, topic, participants)
		if err != nil {
			return ThreadData{}, err
		}

		return ThreadData{
			ThreadID:  thread.ID,
			Topic:     thread.Topic,
			CreatedOn: thread.CreatedOn.Format(time.RFC3339),
		}, nil
	})
}

// MessageData is the envelope payload of SendMessage.
type MessageData struct {
	MessageID string `json:"messageId"`
	SentAt    string `json:"sentAt"`
}

// SendMessage posts a text message to the thread.
func (s *Session) SendMessage(ctx context.Context, threadID, content, senderDisplayName string) result.Result[MessageData] {
	if s.state != StateClientReady {
		return result.Errf[MessageData](errNotInitialized)
	}
	if senderDisplayName == "" {
		senderDisplayName = "User"
	}

	return result.Of(func() (MessageData, error) {
		id, err := s.threads.SendMessage(ctx, threadID, content, senderDisplayName)
		if err != nil {
			return MessageData{}, err
		}
		return MessageData{
			MessageID: id,
			SentAt:    time.Now().UTC().Format(time.RFC3339),
		}, nil
	})
}

// MessagesData is the envelope payload of GetMessages.
type MessagesData struct {
	Messages []Message `json:"messages"`
	Count    int       `json:"count"`
}

// GetMessages fetches up to max messages from the thread's history in the
// service's iteration order.
func (s *Session) GetMessages(ctx context.Context, threadID string, max int) result.Result[MessagesData] {
	if s.state != StateClientReady {
		return result.Errf[MessagesData](errNotInitialized)
	}

	return result.Of(func() (MessagesData, error) {
		messages, err := s.threads.ListMessages(ctx, threadID, max)
		if err != nil {
			return MessagesData{}, err
		}
		return MessagesData{Messages: messages, Count: len(messages)}, nil
	})
}
