package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestLimitAllowsBurstThenRejects(t *testing.T) {
	rl := NewRateLimiter()

	hits := 0
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		hits++
		w.WriteHeader(http.StatusOK)
	})

	var last int
	for i := 0; i < 11; i++ {
		r := httptest.NewRequest("POST", "/api/bookings", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler(w, r, nil)
		last = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last, "burst of 10 exhausted")
	assert.Equal(t, 10, hits)
}

func TestLimitTracksClientsSeparately(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		r := httptest.NewRequest("POST", "/", nil)
		r.RemoteAddr = "10.0.0.1:1"
		handler(httptest.NewRecorder(), r, nil)
	}

	r := httptest.NewRequest("POST", "/", nil)
	r.RemoteAddr = "10.0.0.2:1"
	w := httptest.NewRecorder()
	handler(w, r, nil)

	assert.Equal(t, http.StatusOK, w.Code, "a fresh client has its own bucket")
}
