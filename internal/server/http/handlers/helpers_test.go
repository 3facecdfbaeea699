package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/spinzone/backend/internal/server/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// performRequest routes a single request through a fresh engine. route is the
// gin route pattern; target is the concrete request URL and defaults to route.
func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	if target == "" {
		target = route
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != nil {
		t.Fatalf("expected nil when not set, got %d", *got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	got := CurrentUserID(c)
	if got == nil || *got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}

	c.Set(middleware.UserIDContextKey, "not-an-int")
	if got := CurrentUserID(c); got != nil {
		t.Fatalf("expected nil for wrong type, got %d", *got)
	}
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
