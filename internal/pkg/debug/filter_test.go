package debug

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFilter_AssignsRequestID(t *testing.T) {
	var got Info
	h := Filter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
		Set(r.Context(), "user_id", int64(42))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get(HeaderRequestID)
	if id == "" {
		t.Fatal("missing request id header")
	}
	if got["request_id"] != id {
		t.Errorf("context request_id = %v, want %s", got["request_id"], id)
	}
	if got["user_id"] != int64(42) {
		t.Errorf("Set did not write into the request container: %v", got)
	}
}

func TestFilter_KeepsIncomingRequestID(t *testing.T) {
	h := Filter(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get(HeaderRequestID) != "abc" {
		t.Errorf("request id = %q, want abc", rec.Header().Get(HeaderRequestID))
	}
}
