package middleware

import "net/http"

// CORSMiddleware answers preflight requests and stamps CORS headers. The
// allowed origin comes from configuration; empty means open ("*"), which
// suits the public booking form.
type CORSMiddleware struct {
	allowedOrigins string
}

func NewCORSMiddleware(allowedOrigins string) *CORSMiddleware {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return &CORSMiddleware{
		allowedOrigins: allowedOrigins,
	}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", m.allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
