package webhookclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookClient_PostJSON(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		timeout  time.Duration
		validate func(t *testing.T, status int, body string, err error)
	}{
		{
			name: "Resposta 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))
				b, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, `{"text":"olá"}`, string(b))
				_, _ = w.Write([]byte(`{"errcode":0}`))
			},
			validate: func(t *testing.T, status int, body string, err error) {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, status)
				assert.Equal(t, `{"errcode":0}`, body)
			},
		},
		{
			name: "Resposta 500 não é erro de transporte",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("boom"))
			},
			validate: func(t *testing.T, status int, body string, err error) {
				require.NoError(t, err)
				assert.Equal(t, http.StatusInternalServerError, status)
				assert.Equal(t, "boom", body)
			},
		},
		{
			name: "Timeout vira erro",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
			timeout: 50 * time.Millisecond,
			validate: func(t *testing.T, status int, body string, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			resp, err := NewClientWithHTTP(server.Client()).PostJSON(context.Background(), server.URL, map[string]string{"text": "olá"}, tt.timeout)

			status, body := 0, ""
			if resp != nil {
				status, body = resp.StatusCode, resp.Body
			}
			tt.validate(t, status, body, err)
		})
	}
}

func TestWebhookClient_PostJSONInvalidURL(t *testing.T) {
	_, err := NewClient().PostJSON(context.Background(), "://sem-esquema", map[string]string{}, time.Second)

	assert.Error(t, err)
}

func TestWebhookClient_PostJSONInvalidPayload(t *testing.T) {
	_, err := NewClient().PostJSON(context.Background(), "http://127.0.0.1:1", make(chan int), time.Second)

	assert.Error(t, err)
}
