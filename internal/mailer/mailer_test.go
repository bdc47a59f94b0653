package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedEmail struct {
	From        string   `json:"from"`
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	HTML        string   `json:"html"`
	Attachments []struct {
		Filename string `json:"filename"`
		Content  []byte `json:"content"`
	} `json:"attachments"`
}

func newTestMailer(t *testing.T, handler http.HandlerFunc) Mailer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := resend.NewClient("re_test")
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	return newResendWithClient(client, "Hiring <hiring@example.com>", zap.NewNop())
}

func TestResendMailer_Send(t *testing.T) {
	t.Run("posts email with attachment", func(t *testing.T) {
		var got capturedEmail
		m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/emails", r.URL.Path)
			assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"msg_123"}`))
		})

		id, err := m.Send(context.Background(), Message{
			To:      []string{"asha@example.com"},
			Subject: "Your offer",
			HTML:    "<p>Welcome</p>",
			Attachments: []Attachment{
				{Filename: "offer-letter-ofr-000001.pdf", Content: []byte("%PDF-1.3")},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "msg_123", id)
		assert.Equal(t, "Hiring <hiring@example.com>", got.From)
		assert.Equal(t, []string{"asha@example.com"}, got.To)
		assert.Equal(t, "Your offer", got.Subject)
		require.Len(t, got.Attachments, 1)
		assert.Equal(t, "offer-letter-ofr-000001.pdf", got.Attachments[0].Filename)
		assert.Equal(t, []byte("%PDF-1.3"), got.Attachments[0].Content)
	})

	t.Run("provider error", func(t *testing.T) {
		m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from"}`))
		})

		_, err := m.Send(context.Background(), Message{To: []string{"asha@example.com"}, Subject: "x"})
		assert.Error(t, err)
	})

	t.Run("no recipients", func(t *testing.T) {
		m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("provider must not be called")
		})

		_, err := m.Send(context.Background(), Message{Subject: "x"})
		assert.ErrorIs(t, err, ErrNoRecipients)
	})
}

func TestNewResend_WithoutKeyLogsOnly(t *testing.T) {
	m := NewResend("", "hiring@example.com", zap.NewNop())
	_, ok := m.(*logMailer)
	require.True(t, ok)

	id, err := m.Send(context.Background(), Message{To: []string{"asha@example.com"}, Subject: "Hi"})
	assert.NoError(t, err)
	assert.Empty(t, id)

	_, err = m.Send(context.Background(), Message{Subject: "Hi"})
	assert.ErrorIs(t, err, ErrNoRecipients)
}
