package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domain-expiry-checker/internal/config"
)

func TestDiscordSend(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		expectError bool
	}{
		{name: "No content response", status: http.StatusNoContent},
		{name: "OK response", status: http.StatusOK},
		{name: "Server error", status: http.StatusInternalServerError, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			var received map[string]string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, http.MethodPost, r.Method)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			n := New(config.WebhookConfig{WebhookURL: server.URL}, server.Client())
			err := n.Send(context.Background(), "🚨 **Domain Alert** 🚨")

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, calls)
			assert.Equal(t, map[string]string{"content": "🚨 **Domain Alert** 🚨"}, received)
		})
	}
}
