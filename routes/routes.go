package routes

import (
	"net/http"

	"eventpulse/booking"
	"eventpulse/events"
	"eventpulse/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/eventpic/*filepath", http.Dir("static/eventpic"))
}

func AddEventsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/events", events.GetEvents)
	// Static segment would conflict with the :slug wildcard below, so the
	// count endpoint lives beside the collection path.
	router.GET("/api/events-count", events.GetEventsCount)
	router.POST("/api/events", rl.Limit(events.CreateEvent))
	router.GET("/api/events/:slug", events.GetEventBySlug)
	router.PUT("/api/events/:slug", rl.Limit(events.EditEvent))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/bookings", rl.Limit(booking.CreateBooking))
	router.GET("/api/bookings/:id", booking.GetBooking)
	router.PUT("/api/bookings/:id", rl.Limit(booking.UpdateBooking))
	router.GET("/api/bookings/:id/print", booking.PrintBooking)
}
