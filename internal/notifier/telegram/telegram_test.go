package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domain-expiry-checker/internal/config"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Domain with dots", input: "example.com", expected: `example\.com`},
		{name: "Date dashes", input: "(Expiration Date: 2025-01-31)", expected: `\(Expiration Date: 2025\-01\-31\)`},
		{name: "Exclamation", input: "expire in **5** days!", expected: `expire in **5** days\!`},
		{name: "Nothing to escape", input: "plain", expected: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

func TestTelegramSend(t *testing.T) {
	const endpoint = "https://telegram.test/bot123:abc/sendMessage"

	tests := []struct {
		name        string
		status      int
		expectError bool
	}{
		{name: "Delivered", status: http.StatusOK},
		{name: "Rejected by API", status: http.StatusBadRequest, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &http.Client{}
			httpmock.ActivateNonDefault(client)
			defer httpmock.DeactivateAndReset()

			var received map[string]string
			httpmock.RegisterResponder(http.MethodPost, endpoint,
				func(req *http.Request) (*http.Response, error) {
					assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
					require.NoError(t, json.NewDecoder(req.Body).Decode(&received))
					return httpmock.NewStringResponse(tt.status, `{"ok":true}`), nil
				})

			n := New(config.TelegramConfig{
				BotToken: "123:abc",
				ChatID:   "-1001",
				APIURL:   "https://telegram.test/",
			}, client)
			assert.Equal(t, "telegram", n.Name())

			err := n.Send(context.Background(), "`example.com` expires (soon)!")
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, 1, httpmock.GetTotalCallCount())
			assert.Equal(t, "-1001", received["chat_id"])
			assert.Equal(t, "MarkdownV2", received["parse_mode"])
			assert.Equal(t, "`example\\.com` expires \\(soon\\)\\!", received["text"])
		})
	}
}
