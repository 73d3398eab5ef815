package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	})
	return srv, client
}

func TestComplete_Success(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["model"] != "test-model" {
			t.Errorf("expected model test-model, got %v", req["model"])
		}
		msgs, _ := req["messages"].([]interface{})
		if len(msgs) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(msgs))
		}
		rf, _ := req["response_format"].(map[string]interface{})
		if rf["type"] != "json_object" {
			t.Errorf("expected response_format json_object, got %v", rf)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`))
	})

	got, err := client.Complete(context.Background(), "system prompt", "user prompt", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"ok":true}` {
		t.Errorf("unexpected content: %s", got)
	}
}

func TestComplete_NoResponseFormat(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		if _, ok := req["response_format"]; ok {
			t.Error("response_format should be omitted for plain completions")
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"Aspirin\nIbuprofen"}}]}`))
	})

	got, err := client.Complete(context.Background(), "sys", "usr", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Aspirin\nIbuprofen" {
		t.Errorf("unexpected content: %s", got)
	}
}

func TestComplete_RateLimited(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Complete(context.Background(), "sys", "usr", true)
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestComplete_QuotaExhausted(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})

	_, err := client.Complete(context.Background(), "sys", "usr", true)
	if !errors.Is(err, ErrQuotaExhausted) {
		t.Fatalf("expected ErrQuotaExhausted, got %v", err)
	}
}

func TestComplete_ServerError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream broke"))
	})

	_, err := client.Complete(context.Background(), "sys", "usr", true)
	if err == nil {
		t.Fatal("expected error for 500")
	}
	if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrQuotaExhausted) {
		t.Fatalf("expected generic error, got %v", err)
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Complete(context.Background(), "sys", "usr", true)
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestComplete_ContextCanceled(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "sys", "usr", true)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
}
