package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func chatServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(chatPath, h)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestChat_SendsNonStreamingPayload(t *testing.T) {
	var got ChatPayload
	ts := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method=%s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type=%q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"ok"}}`))
	})

	c := NewClient(ts.URL)
	if _, err := c.Chat(testCtx(t), NewChatPayload("llama3.2:1b", "be kind", "help")); err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got.Model != "llama3.2:1b" || got.Stream {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("messages=%d", len(got.Messages))
	}
	if got.Messages[0].Role != RoleSystem || got.Messages[0].Content != "be kind" {
		t.Fatalf("first message=%+v", got.Messages[0])
	}
	if got.Messages[1].Role != RoleUser || got.Messages[1].Content != "help" {
		t.Fatalf("second message=%+v", got.Messages[1])
	}
}

func TestChat_StreamFalseIsAlwaysEncoded(t *testing.T) {
	b, err := json.Marshal(NewChatPayload("m", "s", "u"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"stream":false`) {
		t.Fatalf("payload must carry stream=false: %s", b)
	}
}

func TestChat_TrimsReply(t *testing.T) {
	ts := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"  fix this  "}}`))
	})
	got, err := NewClient(ts.URL).Chat(testCtx(t), NewChatPayload("m", "s", "u"))
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got != "fix this" {
		t.Fatalf("reply=%q", got)
	}
}

func TestChat_MissingFieldsYieldEmptyReply(t *testing.T) {
	for _, body := range []string{`{}`, `{"message":{"role":"assistant"}}`, `{"done":true}`, `null`} {
		ts := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		got, err := NewClient(ts.URL).Chat(testCtx(t), NewChatPayload("m", "s", "u"))
		if err != nil {
			t.Fatalf("body %s: unexpected error %v", body, err)
		}
		if got != "" {
			t.Fatalf("body %s: reply=%q", body, got)
		}
	}
}

func TestChat_NonSuccessStatus(t *testing.T) {
	ts := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model 'x' not found"}`))
	})
	_, err := NewClient(ts.URL).Chat(testCtx(t), NewChatPayload("x", "s", "u"))
	if err == nil {
		t.Fatalf("expected error on 404")
	}
	if !IsStatus(err, http.StatusNotFound) {
		t.Fatalf("expected StatusError 404, got %T %v", err, err)
	}
	if !strings.Contains(err.Error(), "model 'x' not found") {
		t.Fatalf("error should carry upstream body: %v", err)
	}
}

func TestChat_MalformedJSON(t *testing.T) {
	ts := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message": nope`))
	})
	_, err := NewClient(ts.URL).Chat(testCtx(t), NewChatPayload("m", "s", "u"))
	if err == nil || !strings.Contains(err.Error(), "decode chat response") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestChat_Timeout(t *testing.T) {
	ts := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	c := NewClient(ts.URL, WithTimeout(50*time.Millisecond))
	_, err := c.Chat(context.Background(), NewChatPayload("m", "s", "u"))
	if err == nil || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestChat_ConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()
	if _, err := NewClient(url).Chat(testCtx(t), NewChatPayload("m", "s", "u")); err == nil {
		t.Fatalf("expected error when upstream is down")
	}
}

func TestChat_DoesNotReuseConnections(t *testing.T) {
	var closeRequested atomic.Int32
	ts := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Close {
			closeRequested.Add(1)
		}
		_, _ = w.Write([]byte(`{"message":{"content":"x"}}`))
	})
	c := NewClient(ts.URL)
	for i := 0; i < 2; i++ {
		if _, err := c.Chat(testCtx(t), NewChatPayload("m", "s", "u")); err != nil {
			t.Fatalf("chat %d: %v", i, err)
		}
	}
	if closeRequested.Load() != 2 {
		t.Fatalf("expected every request to ask for connection close, got %d", closeRequested.Load())
	}
}

func TestPing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("Ollama is running"))
	}))
	defer ts.Close()
	if err := NewClient(ts.URL + "/").Ping(testCtx(t)); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestPing_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()
	if err := NewClient(ts.URL).Ping(testCtx(t)); !IsStatus(err, http.StatusNoContent) {
		t.Fatalf("only 200 counts as reachable, got %v", err)
	}
}

func TestPing_Down(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()
	if err := NewClient(url, WithProbeTimeout(200*time.Millisecond)).Ping(testCtx(t)); err == nil {
		t.Fatalf("expected error when upstream is down")
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestWithHTTPClient_FakeTransport(t *testing.T) {
	var url string
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		url = r.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Header:     http.Header{"Content-Type": {"application/json"}},
			Body:       http.NoBody,
			Request:    r,
		}, nil
	})}
	c := NewClient("http://ollama.invalid:11434", WithHTTPClient(hc))
	_, err := c.Chat(testCtx(t), NewChatPayload("m", "s", "u"))
	if err == nil {
		t.Fatalf("empty body is not valid JSON and must fail the attempt")
	}
	if url != "http://ollama.invalid:11434/api/chat" {
		t.Fatalf("url=%q", url)
	}
}
