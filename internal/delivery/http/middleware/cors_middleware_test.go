package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddlewareStampsConfiguredOrigin(t *testing.T) {
	m := NewCORSMiddleware("https://booking.example.com")
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil))

	assert.Equal(t, "https://booking.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCORSMiddlewareDefaultsToOpenOrigin(t *testing.T) {
	m := NewCORSMiddleware("")
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil))

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddlewarePreflightShortCircuits(t *testing.T) {
	called := false
	m := NewCORSMiddleware("*")
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/slots", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
}
