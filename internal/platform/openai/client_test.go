package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lexiblog/lexiblog-api/internal/config"
	"github.com/lexiblog/lexiblog-api/internal/generation"
	"github.com/lexiblog/lexiblog-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// fakeServer serves /chat/completions with a fixed status and body and
// records the last request.
type fakeServer struct {
	*httptest.Server
	calls atomic.Int32

	mu      sync.Mutex
	lastReq chatRequest
	auth    string
}

func (fs *fakeServer) last() (chatRequest, string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.lastReq, fs.auth
}

func newFakeServer(t *testing.T, status int, body string) *fakeServer {
	t.Helper()

	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.calls.Add(1)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var req chatRequest
		assert.NoError(t, json.Unmarshal(raw, &req))
		fs.mu.Lock()
		fs.lastReq = req
		fs.auth = r.Header.Get("Authorization")
		fs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(fs.Close)
	return fs
}

func completion(content, finishReason string) string {
	resp := map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": finishReason,
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
	}
	raw, _ := json.Marshal(resp)
	return string(raw)
}

func newTestClient(t *testing.T, baseURL string) generation.Client {
	t.Helper()

	log, _ := logger.GetTestLogger(t)
	f := NewFactory(config.LLMConfig{
		OpenAIAPIKey:  "sk-test",
		OpenAIBaseURL: baseURL,
		ModelName:     "gpt-4o-mini",
	}, log)

	client, err := f.NewClient(context.Background())
	require.NoError(t, err)
	return client
}

func TestFactory_EmptyKeyFailsBeforeNetwork(t *testing.T) {
	t.Parallel()

	f := NewFactory(config.LLMConfig{ModelName: "gpt-4o-mini"}, nil)

	client, err := f.NewClient(context.Background())

	assert.Nil(t, client)
	assert.ErrorIs(t, err, generation.ErrAuthentication)
	assert.Equal(t, ProviderName, f.Provider())
}

func TestClient_GenerateText(t *testing.T) {
	t.Parallel()

	srv := newFakeServer(t, http.StatusOK, completion("Você sabia? Goroutines custam poucos KB.", "stop"))
	client := newTestClient(t, srv.URL)

	out, err := client.Generate(context.Background(), "prompt de teste", generation.Config{
		Output: generation.OutputText,
		Safety: generation.PermissiveSafety(),
	})

	require.NoError(t, err)
	assert.Equal(t, "Você sabia? Goroutines custam poucos KB.", out)
	assert.Equal(t, int32(1), srv.calls.Load())
	req, auth := srv.last()
	assert.Equal(t, "Bearer sk-test", auth)
	assert.Equal(t, "gpt-4o-mini", req.Model)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Equal(t, "prompt de teste", req.Messages[0].Content)
}

func TestClient_GenerateJSONAppendsSchema(t *testing.T) {
	t.Parallel()

	srv := newFakeServer(t, http.StatusOK, completion(`{"sentences":["a"]}`, "stop"))
	client := newTestClient(t, srv.URL)

	out, err := client.Generate(context.Background(), "frases", generation.Config{
		Model:  "gpt-4.1",
		Output: generation.OutputJSON,
		Schema: generation.SentencesSchema(),
	})

	require.NoError(t, err)
	assert.Equal(t, `{"sentences":["a"]}`, out)
	req, _ := srv.last()
	assert.Equal(t, "gpt-4.1", req.Model)
	require.Len(t, req.Messages, 1)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "frases\n\nRespond with a single JSON object")
	assert.Contains(t, msg, `"sentences"`)
	assert.Contains(t, msg, `"required"`)
}

func TestClient_GenerateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "server error is not retried",
			status:  http.StatusInternalServerError,
			body:    `{"error":{"message":"boom","type":"server_error"}}`,
			wantErr: generation.ErrUpstream,
		},
		{
			name:    "invalid key",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`,
			wantErr: generation.ErrUpstream,
		},
		{
			name:    "content filter",
			status:  http.StatusOK,
			body:    completion("", "content_filter"),
			wantErr: generation.ErrContentBlocked,
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`,
			wantErr: generation.ErrMalformedResponse,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := newFakeServer(t, tc.status, tc.body)
			client := newTestClient(t, srv.URL)

			out, err := client.Generate(context.Background(), "p", generation.Config{})

			assert.Empty(t, out)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, int32(1), srv.calls.Load(), "exactly one outbound call")
		})
	}
}

func TestClient_InvalidConfigMakesNoCall(t *testing.T) {
	t.Parallel()

	srv := newFakeServer(t, http.StatusOK, completion("x", "stop"))
	client := newTestClient(t, srv.URL)

	_, err := client.Generate(context.Background(), "p", generation.Config{Output: generation.OutputJSON})

	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	assert.Zero(t, srv.calls.Load())
}
