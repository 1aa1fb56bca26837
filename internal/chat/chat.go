// Package chat implements the Communication Services chat flow: identity
// and token issuance, thread creation, message send and message history.
//
// All thread operations require an initialized chat client; the Session
// type tracks that lifecycle and converts every outcome into the uniform
// result envelope.
package chat

import (
	"context"
	"time"
)

// ScopeChat is the token scope required for chat operations.
const ScopeChat = "chat"

// UserToken is a freshly issued communication user identity plus its
// access token.
type UserToken struct {
	UserID    string
	Token     string
	ExpiresOn time.Time
}

// IdentityClient is the contract for identity and token issuance.
type IdentityClient interface {
	// CreateUserAndToken creates a new communication user and issues an
	// access token with the given scopes in one round trip.
	CreateUserAndToken(ctx context.Context, scopes []string) (UserToken, error)
}

// Participant is a chat thread member.
type Participant struct {
	UserID      string
	DisplayName string
}

// Thread describes a created chat thread.
type Thread struct {
	ID        string
	Topic     string
	CreatedOn time.Time
}

// Message is one entry of a thread's history, in the order the service
// returns it (newest first).
type Message struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Content   string     `json:"content"`
	SenderID  string     `json:"senderId,omitempty"`
	CreatedOn *time.Time `json:"createdOn,omitempty"`
}

// ThreadClient is the contract for thread and message operations. It is
// bound to one user's access token.
type ThreadClient interface {
	// CreateThread creates a thread with the given topic and participants.
	CreateThread(ctx context.Context, topic string, participants []Participant) (Thread, error)

	// SendMessage posts a text message and returns its id.
	SendMessage(ctx context.Context, threadID, content, senderDisplayName string) (string, error)

	// ListMessages returns up to max messages in service iteration order,
	// following pagination as needed. max <= 0 means no cap.
	ListMessages(ctx context.Context, threadID string, max int) ([]Message, error)
}
