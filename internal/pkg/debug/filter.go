package debug

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID 请求 ID 响应头
const HeaderRequestID = "X-Request-Id"

// Filter 为每个请求准备调试信息容器，并分配请求 ID
func Filter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, requestID)

		info := Info{"request_id": requestID}
		ctx := context.WithValue(r.Context(), debugKey{}, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
