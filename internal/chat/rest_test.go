package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StormyDevil/azure-communication-services-solution/internal/acs"
)

func TestIdentityRESTClient_CreateUserAndToken(t *testing.T) {
	req := require.New(t)

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/identities", r.URL.Path)
		req.NoError(json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{
			"identity":{"id":"8:acs:resource_user"},
			"accessToken":{"token":"ey.jwt","expiresOn":"2024-06-01T10:00:00Z"}
		}`)
	}))
	defer srv.Close()

	client := NewIdentityRESTClient(acs.NewHMACClient(acs.ConnectionString{Endpoint: srv.URL, AccessKey: []byte("key")}))

	token, err := client.CreateUserAndToken(context.Background(), []string{ScopeChat})
	req.NoError(err)
	req.Equal("8:acs:resource_user", token.UserID)
	req.Equal("ey.jwt", token.Token)
	req.Equal(2024, token.ExpiresOn.Year())

	scopes := gotBody["createTokenWithScopes"].([]any)
	req.Equal([]any{"chat"}, scopes)
}

func TestThreadRESTClient_CreateThreadAndSend(t *testing.T) {
	req := require.New(t)

	var createBody, sendBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/chat/threads":
			req.NoError(json.NewDecoder(r.Body).Decode(&createBody))
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"chatThread":{"id":"19:abc@thread.v2","topic":"standup","createdOn":"2024-06-01T10:00:00Z"}}`)
		case r.Method == http.MethodPost && r.URL.Path == "/chat/threads/19:abc@thread.v2/messages":
			req.NoError(json.NewDecoder(r.Body).Decode(&sendBody))
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id":"1716200000000"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewThreadRESTClient(srv.URL, "user-token")

	thread, err := client.CreateThread(context.Background(), "standup", []Participant{
		{UserID: "8:acs:u1", DisplayName: "User-1"},
	})
	req.NoError(err)
	req.Equal("19:abc@thread.v2", thread.ID)
	req.Equal("standup", thread.Topic)

	participants := createBody["participants"].([]any)
	first := participants[0].(map[string]any)
	req.Equal("User-1", first["displayName"])
	identifier := first["communicationIdentifier"].(map[string]any)
	req.Equal("8:acs:u1", identifier["rawId"])

	id, err := client.SendMessage(context.Background(), thread.ID, "hello", "User-1")
	req.NoError(err)
	req.Equal("1716200000000", id)
	req.Equal("text", sendBody["type"])
	req.Equal("hello", sendBody["content"])
}

// Two pages of messages with a cap smaller than the total: only the first
// page should be fetched and the result truncated in service order.
func TestThreadRESTClient_ListMessagesPaginatedWithCap(t *testing.T) {
	req := require.New(t)

	var pages int
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		switch r.URL.Query().Get("page") {
		case "2":
			fmt.Fprint(w, `{"value":[{"id":"2","type":"text","content":{"message":"b"}},{"id":"1","type":"text","content":{"message":"a"}}]}`)
		default:
			fmt.Fprintf(w, `{"value":[
				{"id":"5","type":"text","content":{"message":"e"},"senderCommunicationIdentifier":{"communicationUser":{"id":"8:acs:u1"}}},
				{"id":"4","type":"text","content":{"message":"d"}},
				{"id":"3","type":"topicUpdated","content":{"message":""}}
			],"nextLink":"%s/chat/threads/t/messages?page=2"}`, srv.URL)
		}
	}))
	defer srv.Close()

	client := NewThreadRESTClient(srv.URL, "tok")

	messages, err := client.ListMessages(context.Background(), "t", 2)
	req.NoError(err)
	req.Len(messages, 2)
	req.Equal("5", messages[0].ID)
	req.Equal("e", messages[0].Content)
	req.Equal("8:acs:u1", messages[0].SenderID)
	req.Equal("4", messages[1].ID)
	req.Equal(1, pages, "the cap must stop pagination early")

	// No cap: both pages are consumed.
	pages = 0
	all, err := client.ListMessages(context.Background(), "t", 0)
	req.NoError(err)
	req.Len(all, 5)
	req.Equal(2, pages)
}
