package ocr

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/qiwen-ops/passportd/internal/async"
	"github.com/qiwen-ops/passportd/internal/common"
	"github.com/qiwen-ops/passportd/internal/retry"
)

func writeImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.jpg")
	if err := os.WriteFile(path, []byte{0xff, 0xd8, 0xff, 0xe0}, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testPolicy() retry.Policy {
	return retry.Policy{MaxAttempts: 5, BackoffBase: time.Millisecond, BackoffCap: 2 * time.Millisecond}
}

func newTestClient(url string) *Client {
	return NewClient(url, time.Second, testPolicy(), async.NewIOPool(2, slog.Default()), slog.Default())
}

func TestRecognizeSendsMultipart(t *testing.T) {
	var gotField, gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotField = "file"
		gotFilename = header.Filename
		w.Write([]byte(`{"rec_texts":["ok"],"rec_scores":[1]}`))
	}))
	defer srv.Close()

	raw, err := newTestClient(srv.URL + "/ocr").Recognize(context.Background(), writeImage(t))
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if gotField != "file" || gotFilename != "image.jpg" {
		t.Errorf("form part = (%q, %q), want (file, image.jpg)", gotField, gotFilename)
	}
	if got := Texts(raw); len(got) != 1 || got[0] != "ok" {
		t.Errorf("Texts = %v, want [ok]", got)
	}
}

func TestRecognizeRetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "warming up", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"rec_texts":[],"rec_scores":[]}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL + "/ocr").Recognize(context.Background(), writeImage(t)); err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server called %d times, want 3", got)
	}
}

func TestRecognizeExhaustionIsServiceUnavailable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL + "/ocr").Recognize(context.Background(), writeImage(t))
	if !errors.Is(err, common.ErrServiceUnavailable) {
		t.Fatalf("Recognize error = %v, want ErrServiceUnavailable", err)
	}
	if got := calls.Load(); got != 5 {
		t.Errorf("server called %d times, want 5", got)
	}
}

func TestRecognizeRetriesMalformedJSON(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Write([]byte(`{"broken`))
			return
		}
		w.Write([]byte(`{"rec_texts":[],"rec_scores":[]}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL + "/ocr").Recognize(context.Background(), writeImage(t)); err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server called %d times, want 2", got)
	}
}

func TestHealthyProbesHealthEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.Error(w, "wrong path", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL + "/ocr")
	if !c.Healthy(context.Background()) {
		t.Error("Healthy = false, want true")
	}

	srv.Close()
	if c.Healthy(context.Background()) {
		t.Error("Healthy = true after server stop, want false")
	}
}
