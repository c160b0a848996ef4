package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/harshpatel5/Event-Ticket-System/internal/backend"
	"github.com/harshpatel5/Event-Ticket-System/internal/middleware"
)

const testSecret = "test-secret"

// fakeUpstream plays the ticketing API, recording the method+path of every
// call so tests can assert the mutation-then-refetch sequencing.
type fakeUpstream struct {
	mu        sync.Mutex
	calls     []string
	responses map[string]string
	statuses  map[string]int
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{
		responses: map[string]string{},
		statuses:  map[string]int{},
	}
}

func (f *fakeUpstream) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		f.mu.Lock()
		f.calls = append(f.calls, key)
		body, ok := f.responses[key]
		status := f.statuses[key]
		f.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
		}
		if ok {
			w.Write([]byte(body))
		} else if !ok && status == 0 {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"no fixture"}`))
		}
	}
}

func (f *fakeUpstream) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// newTestRouter wires the handlers the way server.setupRoutes does, against
// the fake upstream.
func newTestRouter(t *testing.T, upstream *fakeUpstream) (*gin.Engine, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream.handler())
	t.Cleanup(srv.Close)

	client := backend.NewClient(srv.URL, 2*time.Second)

	r := gin.New()
	r.Use(middleware.BackendMiddleware(client))
	r.Use(middleware.SessionMiddleware(testSecret))

	public := r.Group("/v1")
	{
		public.POST("/register", Register)
		public.POST("/login", Login)
		public.GET("/events", ListEvents)
		public.GET("/events/featured", FeaturedEvents)
		public.GET("/events/:id", GetEvent)
		public.GET("/categories", ListCategories)
		public.GET("/venues", ListVenues)
		public.POST("/purchases", CreatePurchase)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.RequireAuth())
	{
		protected.GET("/me", Me)
	}

	admin := r.Group("/v1/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/events", AdminEvents)
		admin.POST("/events", CreateEvent)
		admin.PUT("/events/:id", UpdateEvent)
		admin.DELETE("/events/:id", DeleteEvent)
	}

	return r, srv
}

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "1",
		"role": role,
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// catalogFixtures installs the four collection endpoints with a small
// consistent data set.
func catalogFixtures(f *fakeUpstream) {
	f.responses["GET /events/"] = `[
		{"event_id":1,"event_name":"Rock Legends Live","event_date":"2025-12-15 19:00:00","category_id":1,"venue_id":1,"status":"Upcoming"},
		{"event_id":2,"event_name":"Basketball Championship","event_date":"2025-11-20 18:30:00","category_id":2,"venue_id":2,"status":"Upcoming"},
		{"event_id":3,"event_name":"Shakespeare Festival","event_date":"2025-11-10 20:00:00","category_id":3,"venue_id":2,"status":"Completed"}
	]`
	f.responses["GET /categories/"] = `[
		{"category_id":1,"category_name":"Concerts"},
		{"category_id":2,"category_name":"Sports"},
		{"category_id":3,"category_name":"Theater"}
	]`
	f.responses["GET /venues/"] = `[
		{"venue_id":1,"venue_name":"Grand Arena","city":"Toronto","address":"123 Main Street"},
		{"venue_id":2,"venue_name":"Sports Complex","city":"Mississauga","address":"9 Arena Rd"}
	]`
	f.responses["GET /tickets/"] = `[
		{"ticket_id":10,"event_id":1,"ticket_type":"GA","price":"75.00","quantity_available":100},
		{"ticket_id":11,"event_id":2,"ticket_type":"GA","price":45,"quantity_available":50}
	]`
}
