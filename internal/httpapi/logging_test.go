package httpapi

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":       LevelOff,
		"off":    LevelOff,
		"error":  LevelError,
		"warn":   LevelError,
		"info":   LevelInfo,
		" INFO ": LevelInfo,
		"debug":  LevelDebug,
		"weird":  LevelInfo, // default
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	// query param ?log=debug
	r := httptest.NewRequest("GET", "/x?log=debug", nil)
	if got := requestLogLevel(r, LevelOff); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	// shorthand ?log=1
	r = httptest.NewRequest("GET", "/x?log=1", nil)
	if got := requestLogLevel(r, LevelOff); got != LevelDebug {
		t.Fatalf("shorthand query override failed: %v", got)
	}
	// header X-Log-Level
	r = httptest.NewRequest("GET", "/x", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r, LevelInfo); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
	// no override falls back to the default
	r = httptest.NewRequest("GET", "/x", nil)
	if got := requestLogLevel(r, LevelInfo); got != LevelInfo {
		t.Fatalf("default not used: %v", got)
	}
}

func newBufLogger() (*bytes.Buffer, *zerolog.Logger) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	return &buf, &l
}

func TestChatLogsStartAndEnd(t *testing.T) {
	buf, l := newBufLogger()
	h := NewMux(&mockService{reply: "ok"}, Options{Logger: l, LogLevel: LevelInfo})
	w := postChat(h, `{"message":"hi","model":"llama3.2:1b"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	out := buf.String()
	if !strings.Contains(out, `"message":"chat start"`) || !strings.Contains(out, `"message":"chat end"`) {
		t.Fatalf("missing start/end lines: %s", out)
	}
	if !strings.Contains(out, `"request_id"`) || !strings.Contains(out, `"status":200`) {
		t.Fatalf("end line lacks request id or status: %s", out)
	}
}

func TestChatLogLevelOffIsSilent(t *testing.T) {
	buf, l := newBufLogger()
	h := NewMux(&mockService{chatErr: errors.New("boom")}, Options{Logger: l, LogLevel: LevelOff})
	postChat(h, `{"message":"hi"}`)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %s", buf.String())
	}
}

func TestChatErrorLevelLogsOnlyFailures(t *testing.T) {
	buf, l := newBufLogger()
	h := NewMux(&mockService{reply: "ok"}, Options{Logger: l, LogLevel: LevelError})
	postChat(h, `{"message":"hi"}`)
	if buf.Len() != 0 {
		t.Fatalf("success should be silent at error level: %s", buf.String())
	}
	h = NewMux(&mockService{chatErr: errors.New("boom")}, Options{Logger: l, LogLevel: LevelError})
	postChat(h, `{"message":"hi"}`)
	out := buf.String()
	if strings.Contains(out, "chat start") || !strings.Contains(out, `"status":500`) || !strings.Contains(out, `"level":"error"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestChatPerRequestDebugOverride(t *testing.T) {
	buf, l := newBufLogger()
	h := NewMux(&mockService{reply: "12345"}, Options{Logger: l, LogLevel: LevelOff})
	req := httptest.NewRequest(http.MethodPost, "/api/chat?log=debug", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !strings.Contains(buf.String(), `"reply_len":5`) {
		t.Fatalf("debug override missing reply_len: %s", buf.String())
	}
}
