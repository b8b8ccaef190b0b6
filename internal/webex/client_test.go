package webex

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_HeaderInjection(t *testing.T) {
	var captured http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token-123")
	_, err := client.ListRooms(context.Background(), ListRoomsOpts{})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token-123", captured.Get("Authorization"))
	assert.NotEmpty(t, captured.Get("TrackingID"))
}

func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"The requested resource could not be found.","trackingId":"ROUTER_123"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	_, err := client.GetRoom(context.Background(), "missing-room")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "The requested resource could not be found.", apiErr.Message)
	assert.Equal(t, "ROUTER_123", apiErr.TrackingID)
	assert.Contains(t, apiErr.Error(), "The requested resource could not be found.")
}

func TestClient_RateLimitRetry(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"r1","title":"After the wait","type":"group","created":"2023-01-01T00:00:00.000Z"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	rooms, err := client.ListRooms(context.Background(), ListRoomsOpts{})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	require.Len(t, rooms, 1)
	assert.Equal(t, "After the wait", rooms[0].Title)
}

func TestClient_ListRoomsQuery(t *testing.T) {
	var query map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	_, err := client.ListRooms(context.Background(), ListRoomsOpts{Max: 50, Type: "group"})
	require.NoError(t, err)

	assert.Equal(t, []string{"50"}, query["max"])
	assert.Equal(t, []string{"group"}, query["type"])
}

func TestClient_OptionalFieldsAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"r1","title":"Bare","type":"group","created":"2023-01-01T00:00:00.000Z"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	room, err := client.GetRoom(context.Background(), "r1")
	require.NoError(t, err)

	assert.Nil(t, room.LastActivity)
	assert.Nil(t, room.CreatorID)
	assert.Equal(t, "2023-01-01T00:00:00.000Z", room.Created)
}

func TestClient_DeleteMessageNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/messages/m-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	require.NoError(t, client.DeleteMessage(context.Background(), "m-1"))
}

func TestClient_CreateMessagePayload(t *testing.T) {
	var payload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m1","roomId":"r1","text":"hi","personId":"p1","personEmail":"bot@example.com","created":"2023-01-01T00:00:00.000Z"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	msg, err := client.CreateMessage(context.Background(), MessageRequest{RoomID: "r1", Text: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "r1", payload["roomId"])
	assert.Equal(t, "hi", payload["text"])
	_, hasMarkdown := payload["markdown"]
	assert.False(t, hasMarkdown)
	_, hasToPerson := payload["toPersonId"]
	assert.False(t, hasToPerson)
	assert.Equal(t, "m1", msg.ID)
}

func TestNewClientFromCredentials_NoCredentials(t *testing.T) {
	_, err := NewClientFromCredentials(context.Background(), Credentials{})
	require.ErrorIs(t, err, ErrNoCredentials)
}

func TestNewClientFromCredentials_AccessTokenPreferred(t *testing.T) {
	client, err := NewClientFromCredentials(context.Background(), Credentials{
		AccessToken:       "static-token",
		GuestIssuerID:     "issuer",
		GuestIssuerSecret: "c2VjcmV0",
	})
	require.NoError(t, err)
	assert.Equal(t, "static-token", client.token)
}
