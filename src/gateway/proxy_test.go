package gateway_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/gateway"
)

// closeNotifyRecorder adds the http.CloseNotifier method that
// httputil.ReverseProxy requires of gin's response writer; a bare
// httptest.ResponseRecorder panics inside gin's CloseNotify.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
}

func (c *closeNotifyRecorder) CloseNotify() <-chan bool { return make(chan bool) }

func newRecorder() *closeNotifyRecorder {
	return &closeNotifyRecorder{httptest.NewRecorder()}
}

func newBackend(t *testing.T, name string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Backend", name)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(name + " saw " + r.URL.Path))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGatewayRouting(t *testing.T) {
	gin.SetMode(gin.TestMode)

	users := newBackend(t, "users")
	projects := newBackend(t, "projects")

	router, err := gateway.NewRouter([]gateway.Route{
		{Prefix: "/users", Backend: users.URL},
		{Prefix: "/projects", Backend: projects.URL},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("forwards by prefix with the path intact", func(t *testing.T) {
		w := newRecorder()
		req := httptest.NewRequest("GET", "/projects/3/proposals", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("X-Backend"); got != "projects" {
			t.Fatalf("expected the projects backend, got %q", got)
		}
		if w.Body.String() != "projects saw /projects/3/proposals" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("each prefix has its own backend", func(t *testing.T) {
		w := newRecorder()
		req := httptest.NewRequest("GET", "/users/1", nil)
		router.ServeHTTP(w, req)

		if got := w.Header().Get("X-Backend"); got != "users" {
			t.Fatalf("expected the users backend, got %q", got)
		}
	})

	t.Run("unknown prefix", func(t *testing.T) {
		w := newRecorder()
		req := httptest.NewRequest("GET", "/nowhere", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("health is served locally", func(t *testing.T) {
		w := newRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Header().Get("X-Backend") != "" {
			t.Fatalf("expected a local 200, got %d from %q", w.Code, w.Header().Get("X-Backend"))
		}
	})
}

func TestGatewayDeadBackend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dead := newBackend(t, "dead")
	deadURL := dead.URL
	dead.Close()

	router, err := gateway.NewRouter([]gateway.Route{
		{Prefix: "/payments", Backend: deadURL},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := newRecorder()
	req := httptest.NewRequest("POST", "/payments", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestGatewayRejectsBadBackendURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if _, err := gateway.NewRouter([]gateway.Route{
		{Prefix: "/x", Backend: "://not-a-url"},
	}); err == nil {
		t.Fatal("expected error, got nil")
	}
}
