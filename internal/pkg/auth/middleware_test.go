package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/transport"
)

type headerCarrier http.Header

func (hc headerCarrier) Get(key string) string      { return http.Header(hc).Get(key) }
func (hc headerCarrier) Set(key, value string)      { http.Header(hc).Set(key, value) }
func (hc headerCarrier) Add(key, value string)      { http.Header(hc).Add(key, value) }
func (hc headerCarrier) Values(key string) []string { return http.Header(hc).Values(key) }
func (hc headerCarrier) Keys() []string {
	keys := make([]string, 0, len(hc))
	for k := range hc {
		keys = append(keys, k)
	}
	return keys
}

type testTransport struct {
	operation string
	header    headerCarrier
}

func (tr *testTransport) Kind() transport.Kind            { return transport.KindHTTP }
func (tr *testTransport) Endpoint() string                { return "" }
func (tr *testTransport) Operation() string               { return tr.operation }
func (tr *testTransport) RequestHeader() transport.Header { return tr.header }
func (tr *testTransport) ReplyHeader() transport.Header   { return headerCarrier{} }

type emailRequest struct{ Email string }

func (r *emailRequest) GetEmail() string { return r.Email }

func serverContext(operation, authorization string) context.Context {
	h := headerCarrier{}
	if authorization != "" {
		h.Set(HeaderAuthorization, authorization)
	}
	return transport.NewServerContext(context.Background(), &testTransport{operation: operation, header: h})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer   abc  ", "abc", true},
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
	}
	for _, tt := range tests {
		got, err := BearerToken(tt.header)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("BearerToken(%q) = %q, %v; want %q", tt.header, got, err, tt.want)
		}
		if !tt.ok && !errors.Is(err, ErrMissingCredential) {
			t.Errorf("BearerToken(%q): want ErrMissingCredential, got %v", tt.header, err)
		}
	}
}

func TestMiddleware_Pipeline(t *testing.T) {
	s, _, _ := newTestService(t)
	valid, _ := s.Issue(context.Background(), 42)
	revoked, _ := s.Issue(context.Background(), 7)
	s.Revoke(context.Background(), revoked)

	cfg := NewPathAccessConfig([]string{"/public", "/open/"}, []string{"/admin"})
	m := Middleware(s, NewGate(""), cfg)

	var seen int64
	h := m(func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = 0
		if claims, err := FromContext(ctx); err == nil {
			seen = claims.UserID
		}
		return "ok", nil
	})

	tests := []struct {
		name      string
		operation string
		header    string
		req       interface{}
		wantErr   *errors.Error
		wantID    int64
	}{
		{"public without token", "/public", "", nil, nil, 0},
		{"prefix public", "/open/anything", "", nil, nil, 0},
		{"missing header", "/private", "", nil, ErrMissingCredential, 0},
		{"malformed header", "/private", "Token " + valid, nil, ErrMissingCredential, 0},
		{"valid token", "/private", "Bearer " + valid, nil, nil, 42},
		{"invalid token", "/private", "Bearer nope", nil, ErrTokenInvalid, 0},
		{"revoked token", "/private", "Bearer " + revoked, nil, ErrTokenRevoked, 0},
		{"admin approved", "/admin", "Bearer " + valid, &emailRequest{"a@admin.com.br"}, nil, 42},
		{"admin denied", "/admin", "Bearer " + valid, &emailRequest{"a@example.com"}, ErrAuthorizationDenied, 0},
		{"admin without claim", "/admin", "Bearer " + valid, struct{}{}, ErrAuthorizationDenied, 0},
		{"admin needs token first", "/admin", "", &emailRequest{"a@admin.com.br"}, ErrMissingCredential, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = -1
			_, err := h(serverContext(tt.operation, tt.header), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
				if seen != -1 {
					t.Fatal("handler must not run on rejection")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seen != tt.wantID {
				t.Errorf("identity = %d, want %d", seen, tt.wantID)
			}
		})
	}
}
