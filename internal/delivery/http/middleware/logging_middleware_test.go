package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-product-catalog/internal/delivery/http/middleware"

	"github.com/sirupsen/logrus"
)

func newLoggingHandler() http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return middleware.NewLoggingMiddleware(log).Handle(
		http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	)
}

func TestLoggingSetsRequestIDHeader(t *testing.T) {
	h := newLoggingHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("response is missing X-Request-ID")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("downstream status not preserved, got %d", rec.Code)
	}
}

func TestLoggingEchoesUpstreamRequestID(t *testing.T) {
	h := newLoggingHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("X-Request-ID", "edge-7f3a")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "edge-7f3a" {
		t.Fatalf("want upstream id echoed back, got %q", got)
	}
}
