package chat

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/StormyDevil/azure-communication-services-solution/internal/acs"
)

const chatAPIVersion = "2023-04-01"

// listPageSize is the page size requested from the service; the overall
// cap is applied while iterating pages.
const listPageSize = 20

// ThreadRESTClient performs thread and message operations with a user
// access token over the bearer-authenticated transport.
type ThreadRESTClient struct {
	transport *acs.Client
}

// NewThreadRESTClient creates a thread client bound to one user token.
func NewThreadRESTClient(endpoint, accessToken string) *ThreadRESTClient {
	return &ThreadRESTClient{transport: acs.NewBearerClient(endpoint, accessToken)}
}

type communicationIdentifier struct {
	RawID             string `json:"rawId"`
	CommunicationUser struct {
		ID string `json:"id"`
	} `json:"communicationUser"`
}

type threadParticipant struct {
	CommunicationIdentifier communicationIdentifier `json:"communicationIdentifier"`
	DisplayName             string                  `json:"displayName,omitempty"`
}

type createThreadPayload struct {
	Topic        string              `json:"topic"`
	Participants []threadParticipant `json:"participants,omitempty"`
}

type createThreadResponse struct {
	ChatThread struct {
		ID        string    `json:"id"`
		Topic     string    `json:"topic"`
		CreatedOn time.Time `json:"createdOn"`
	} `json:"chatThread"`
}

// CreateThread implements ThreadClient against POST /chat/threads.
func (c *ThreadRESTClient) CreateThread(ctx context.Context, topic string, participants []Participant) (Thread, error) {
	payload := createThreadPayload{Topic: topic}
	for _, p := range participants {
		tp := threadParticipant{DisplayName: p.DisplayName}
		tp.CommunicationIdentifier.RawID = p.UserID
		tp.CommunicationIdentifier.CommunicationUser.ID = p.UserID
		payload.Participants = append(payload.Participants, tp)
	}

	resp, err := c.transport.Do(ctx, http.MethodPost,
		"/chat/threads?api-version="+chatAPIVersion, payload)
	if err != nil {
		return Thread{}, err
	}

	var parsed createThreadResponse
	if err := resp.Decode(&parsed); err != nil {
		return Thread{}, err
	}
	if parsed.ChatThread.ID == "" {
		return Thread{}, fmt.Errorf("create thread response missing thread id")
	}

	return Thread{
		ID:        parsed.ChatThread.ID,
		Topic:     parsed.ChatThread.Topic,
		CreatedOn: parsed.ChatThread.CreatedOn,
	}, nil
}

type sendMessagePayload struct {
	Content           string `json:"content"`
	SenderDisplayName string `json:"senderDisplayName,omitempty"`
	Type              string `json:"type"`
}

// SendMessage implements ThreadClient against POST /chat/threads/{id}/messages.
func (c *ThreadRESTClient) SendMessage(ctx context.Context, threadID, content, senderDisplayName string) (string, error) {
	path := fmt.Sprintf("/chat/threads/%s/messages?api-version=%s",
		url.PathEscape(threadID), chatAPIVersion)

	resp, err := c.transport.Do(ctx, http.MethodPost, path, sendMessagePayload{
		Content:           content,
		SenderDisplayName: senderDisplayName,
		Type:              "text",
	})
	if err != nil {
		return "", err
	}

	var parsed struct {
		ID string `json:"id"`
	}
	if err := resp.Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.ID == "" {
		return "", fmt.Errorf("send message response missing message id")
	}

	return parsed.ID, nil
}

type listMessagesResponse struct {
	Value []struct {
		ID      string `json:"id"`
		Type    string `json:"type"`
		Content *struct {
			Message string `json:"message"`
		} `json:"content"`
		SenderCommunicationIdentifier *struct {
			CommunicationUser struct {
				ID string `json:"id"`
			} `json:"communicationUser"`
		} `json:"senderCommunicationIdentifier"`
		CreatedOn *time.Time `json:"createdOn"`
	} `json:"value"`
	NextLink string `json:"nextLink"`
}

// ListMessages implements ThreadClient. The service paginates lazily via
// nextLink; pages are consumed until max messages are collected or the
// listing is exhausted, preserving service order.
func (c *ThreadRESTClient) ListMessages(ctx context.Context, threadID string, max int) ([]Message, error) {
	next := fmt.Sprintf("/chat/threads/%s/messages?maxPageSize=%d&api-version=%s",
		url.PathEscape(threadID), listPageSize, chatAPIVersion)

	var messages []Message
	for next != "" {
		resp, err := c.transport.Do(ctx, http.MethodGet, next, nil)
		if err != nil {
			return nil, err
		}

		var page listMessagesResponse
		if err := resp.Decode(&page); err != nil {
			return nil, err
		}

		for _, m := range page.Value {
			if max > 0 && len(messages) >= max {
				return messages, nil
			}
			msg := Message{ID: m.ID, Type: m.Type, CreatedOn: m.CreatedOn}
			if m.Content != nil {
				msg.Content = m.Content.Message
			}
			if m.SenderCommunicationIdentifier != nil {
				msg.SenderID = m.SenderCommunicationIdentifier.CommunicationUser.ID
			}
			messages = append(messages, msg)
		}

		next = page.NextLink
	}

	return messages, nil
}

var _ ThreadClient = (*ThreadRESTClient)(nil)
