package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// newCompletionServer fakes a chat-completions endpoint. It counts requests
// and either returns content or fails with the given status.
func newCompletionServer(t *testing.T, content string, status int, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Unexpected request path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Expected bearer auth header, got %q", got)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func testAdvisor(serverURL string) *Advisor {
	return NewAdvisor(NewClient("test-key", "gpt-4o", serverURL), "friend")
}

func TestGenerateReframing(t *testing.T) {
	var calls atomic.Int64
	srv := newCompletionServer(t, "A kinder way to see it.", http.StatusOK, &calls)
	defer srv.Close()

	got := testAdvisor(srv.URL).GenerateReframing(context.Background(), "I failed")
	if got != "A kinder way to see it." {
		t.Errorf("Expected generated text, got %q", got)
	}
	if calls.Load() != 1 {
		t.Errorf("Expected exactly one service call, got %d", calls.Load())
	}
}

func TestGenerateReframingBlankInput(t *testing.T) {
	var calls atomic.Int64
	srv := newCompletionServer(t, "unused", http.StatusOK, &calls)
	defer srv.Close()

	a := testAdvisor(srv.URL)
	for _, input := range []string{"", "   ", "\n\t"} {
		if got := a.GenerateReframing(context.Background(), input); got != "" {
			t.Errorf("GenerateReframing(%q): expected empty string, got %q", input, got)
		}
	}
	if calls.Load() != 0 {
		t.Errorf("Blank input must not invoke the service; got %d calls", calls.Load())
	}
}

func TestGenerateReframingFallbackOnServerError(t *testing.T) {
	var calls atomic.Int64
	srv := newCompletionServer(t, "", http.StatusInternalServerError, &calls)
	defer srv.Close()

	got := testAdvisor(srv.URL).GenerateReframing(context.Background(), "I failed")
	if got == "" {
		t.Fatal("Expected fallback text on service failure, got empty string")
	}
	if !strings.Contains(got, "friend") {
		t.Errorf("Expected fallback to address the user, got %q", got)
	}
}

func TestGenerateReframingFallbackOnUnreachableService(t *testing.T) {
	// Closed server: connection refused. The advisor must still answer.
	var calls atomic.Int64
	srv := newCompletionServer(t, "", http.StatusOK, &calls)
	url := srv.URL
	srv.Close()

	if got := testAdvisor(url).GenerateReframing(context.Background(), "I failed"); got == "" {
		t.Fatal("Expected fallback text when the service is unreachable")
	}
}

func TestGenerateAffirmation(t *testing.T) {
	var calls atomic.Int64
	srv := newCompletionServer(t, "You've got this.", http.StatusOK, &calls)
	defer srv.Close()

	if got := testAdvisor(srv.URL).GenerateAffirmation(context.Background()); got != "You've got this." {
		t.Errorf("Expected generated affirmation, got %q", got)
	}
}

func TestGenerateAffirmationFallback(t *testing.T) {
	var calls atomic.Int64
	srv := newCompletionServer(t, "", http.StatusTooManyRequests, &calls)
	defer srv.Close()

	got := testAdvisor(srv.URL).GenerateAffirmation(context.Background())
	if got == "" {
		t.Fatal("Expected fixed fallback affirmation, got empty string")
	}
}

func TestGeneratePersonalizedAdvice(t *testing.T) {
	var calls atomic.Int64
	srv := newCompletionServer(t, "Try a short walk first.", http.StatusOK, &calls)
	defer srv.Close()

	a := testAdvisor(srv.URL)
	if got := a.GeneratePersonalizedAdvice(context.Background(), "exam stress"); got != "Try a short walk first." {
		t.Errorf("Expected generated advice, got %q", got)
	}
	if got := a.GeneratePersonalizedAdvice(context.Background(), "  "); got != "" {
		t.Errorf("Expected empty string for blank situation, got %q", got)
	}
}

func TestMissingAPIKeyUsesFallback(t *testing.T) {
	a := NewAdvisor(NewClient("", "gpt-4o", "https://api.openai.com/v1"), "friend")
	if got := a.GenerateAffirmation(context.Background()); got == "" {
		t.Fatal("Expected fallback when no API key is configured")
	}
}
