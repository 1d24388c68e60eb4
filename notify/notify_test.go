package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var received Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	err = client.Send(Event{
		Kind:    "waitlist_signup",
		Message: "New waitlist signup: ada@example.com",
		Fields:  map[string]string{"email": "ada@example.com", "source": "home"},
	})
	require.NoError(t, err)

	assert.Equal(t, "waitlist_signup", received.Kind)
	assert.Equal(t, "ada@example.com", received.Fields["email"])
	assert.Equal(t, "home", received.Fields["source"])
	assert.False(t, received.CreatedAt.IsZero())
}

func TestSendServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	err = client.Send(Event{Kind: "contact_message"})
	assert.Error(t, err)
}

func TestNewRequiresURL(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}
