package cloudflare

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// testBusySink counts begin/end signals.
type testBusySink struct {
	begins int
	ends   int
}

func (s *testBusySink) Begin() { s.begins++ }
func (s *testBusySink) End()   { s.ends++ }

// newTestClient points a client at a stub API server.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithBaseURL(srv.URL + "/")}, opts...)
	return NewClient("user@example.com", "test-api-key", opts...), srv
}

func TestDispatchSetsAuthHeaders(t *testing.T) {
	var gotKey, gotEmail, gotContentType string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Auth-Key")
		gotEmail = r.Header.Get("X-Auth-Email")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"result":[]}`))
	})

	if _, err := c.dispatch(context.Background(), http.MethodGet, "zones", nil); err != nil {
		t.Fatalf("dispatch() failed: %v", err)
	}

	if gotKey != "test-api-key" {
		t.Errorf("Expected X-Auth-Key 'test-api-key', got '%s'", gotKey)
	}
	if gotEmail != "user@example.com" {
		t.Errorf("Expected X-Auth-Email 'user@example.com', got '%s'", gotEmail)
	}
	if gotContentType != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got '%s'", gotContentType)
	}
}

func TestDispatchCollapsesFailuresToErrUnknown(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"success":false}`))
			},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "undecodable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
		{
			name: "non-object body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[1,2,3]`))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, tc.handler)
			_, err := c.dispatch(context.Background(), http.MethodGet, "zones", nil)
			if err != ErrUnknown {
				t.Errorf("Expected ErrUnknown, got %v", err)
			}
		})
	}
}

func TestDispatchNetworkErrorIsErrUnknown(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := c.dispatch(context.Background(), http.MethodGet, "zones", nil)
	if err != ErrUnknown {
		t.Errorf("Expected ErrUnknown, got %v", err)
	}
}

func TestDispatchSignalsBusyExactlyOnce(t *testing.T) {
	sink := &testBusySink{}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[]}`))
	}, WithBusySink(sink))

	if _, err := c.dispatch(context.Background(), http.MethodGet, "zones", nil); err != nil {
		t.Fatalf("dispatch() failed: %v", err)
	}

	if sink.begins != 1 || sink.ends != 1 {
		t.Errorf("Expected 1 begin and 1 end, got %d and %d", sink.begins, sink.ends)
	}
}

func TestDispatchSignalsBusyOnFailure(t *testing.T) {
	sink := &testBusySink{}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, WithBusySink(sink))

	if _, err := c.dispatch(context.Background(), http.MethodGet, "zones", nil); err != ErrUnknown {
		t.Fatalf("Expected ErrUnknown, got %v", err)
	}

	if sink.begins != 1 || sink.ends != 1 {
		t.Errorf("Expected 1 begin and 1 end, got %d and %d", sink.begins, sink.ends)
	}
}
