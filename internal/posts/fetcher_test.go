package posts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func serve(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing X-Request-Id header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFetchAllSuccess(t *testing.T) {
	srv, hits := serve(t, http.StatusOK, `[
		{"userId": 1, "id": 1, "title": "Hello World", "body": "a\nb"},
		{"userId": 1, "id": 2, "title": "Goodbye", "body": "c", "extra": true}
	]`)

	got, err := NewHTTPFetcher(srv.URL, srv.Client(), nil).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	want := []Post{
		{ID: 1, UserID: 1, Title: "Hello World", Body: "a\nb"},
		{ID: 2, UserID: 1, Title: "Goodbye", Body: "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FetchAll() mismatch (-want +got):\n%s", diff)
	}
	if hits.Load() != 1 {
		t.Errorf("requests = %d, want exactly 1", hits.Load())
	}
}

func TestFetchAllEmptyArray(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `[]`)

	got, err := NewHTTPFetcher(srv.URL, srv.Client(), nil).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("FetchAll() = %#v, want empty non-nil slice", got)
	}
}

func TestFetchAllFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{"server error", http.StatusInternalServerError, `oops`, 500},
		{"not found", http.StatusNotFound, `[]`, 404},
		{"malformed json", http.StatusOK, `[{"id": 1,`, 200},
		{"object not array", http.StatusOK, `{"id": 1}`, 200},
		{"null body", http.StatusOK, `null`, 200},
		{"missing title", http.StatusOK, `[{"userId": 1, "id": 1, "body": "b"}]`, 200},
		{"missing userId", http.StatusOK, `[{"id": 1, "title": "t", "body": "b"}]`, 200},
		{"zero id", http.StatusOK, `[{"userId": 1, "id": 0, "title": "t", "body": "b"}]`, 200},
		{"wrong type", http.StatusOK, `[{"userId": 1, "id": "one", "title": "t", "body": "b"}]`, 200},
		{"trailing data", http.StatusOK, `[] garbage`, 200},
		{"second array", http.StatusOK, `[][]`, 200},
		{"truncated trailing object", http.StatusOK, `[{"userId": 1, "id": 1, "title": "t", "body": "b"}]{"x":`, 200},
		{"duplicate id", http.StatusOK, `[{"userId": 1, "id": 1, "title": "t", "body": "b"}, {"userId": 1, "id": 1, "title": "u", "body": "c"}]`, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := serve(t, tt.status, tt.body)

			_, err := NewHTTPFetcher(srv.URL, srv.Client(), nil).FetchAll(context.Background())
			if !errors.Is(err, ErrFetchFailed) {
				t.Fatalf("FetchAll() error = %v, want ErrFetchFailed", err)
			}
			var fe *FetchError
			if !errors.As(err, &fe) {
				t.Fatalf("error type = %T, want *FetchError", err)
			}
			if fe.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", fe.Status, tt.wantStatus)
			}
		})
	}
}

func TestFetchAllTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPFetcher(url, nil, nil).FetchAll(context.Background())
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("FetchAll() error = %v, want ErrFetchFailed", err)
	}
	var fe *FetchError
	if errors.As(err, &fe) && fe.Status != 0 {
		t.Errorf("Status = %d, want 0 for transport error", fe.Status)
	}
}

func TestFetchAllCancelled(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPFetcher(srv.URL, srv.Client(), nil).FetchAll(ctx)
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("FetchAll() error = %v, want ErrFetchFailed", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("FetchAll() error = %v, want to wrap context.Canceled", err)
	}
}

func TestFetchErrorMessage(t *testing.T) {
	err := &FetchError{Status: 503, Err: errors.New("Service Unavailable")}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("Error() = %q, want status", err.Error())
	}
}

func TestDecodeTrailingInput(t *testing.T) {
	if _, err := Decode(strings.NewReader("[]\n  \n")); err != nil {
		t.Errorf("Decode() with trailing whitespace error = %v", err)
	}
	for _, body := range []string{`[] garbage`, `[][]`, `[]{"x":`} {
		_, err := Decode(strings.NewReader(body))
		if err == nil || !strings.Contains(err.Error(), "trailing data") {
			t.Errorf("Decode(%q) error = %v, want trailing data", body, err)
		}
	}
}
