package release

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		BaseURL: srv.URL,
		Limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

func TestLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/vantagepanel/panel/releases/latest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"tag_name": "v1.4.2", "name": "1.4.2"}`))
	}))
	defer srv.Close()

	tag, err := newTestClient(srv).Latest(context.Background(), "vantagepanel/panel")
	if err != nil {
		t.Fatal(err)
	}
	if tag != "v1.4.2" {
		t.Errorf("got %q, want v1.4.2", tag)
	}
}

func TestLatestHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).Latest(context.Background(), "x/y"); err == nil {
		t.Error("expected error on HTTP 500")
	}
}

func TestLatestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).Latest(context.Background(), "x/y"); err == nil {
		t.Error("expected error on HTTP 404")
	}
}

func TestLatestMissingTag(t *testing.T) {
	// A body without tag_name must surface as an error, never as
	// a silently empty version string.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "untagged"}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).Latest(context.Background(), "x/y"); err == nil {
		t.Error("expected error on missing tag_name")
	}
}

func TestLatestConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	if _, err := newTestClient(srv).Latest(context.Background(), "x/y"); err == nil {
		t.Error("expected error when the endpoint is unreachable")
	}
}
