package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"coworking-reservation-backend/config"
	"coworking-reservation-backend/internal/mw"
	"coworking-reservation-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.Config, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, cfg, webpushOptions)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/rooms", handler.ListRooms)
		api.POST("/rooms", handler.CreateRoom)
		api.GET("/rooms/:id", handler.GetRoom)
		api.PUT("/rooms/:id", handler.UpdateRoom)
		api.DELETE("/rooms/:id", handler.DeleteRoom)

		api.POST("/reservations", handler.CreateReservation)
		api.GET("/reservations", handler.ListReservations)
		api.GET("/reservations/:id", handler.GetReservation)
		api.PUT("/reservations/:id", handler.UpdateReservation)
		api.DELETE("/reservations/:id", handler.DeleteReservation)

		// Lives outside /reservations so the static segment does not clash
		// with the :id wildcard.
		api.GET("/documents/:document/reservation", handler.GetReservationByDocument)

		// The usage report scans every reservation; serve repeats from cache.
		api.GET("/reports/room-usage", caching, handler.GetRoomUsageReport)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
