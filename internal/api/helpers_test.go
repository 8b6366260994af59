package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"coworking-reservation-backend/config"
	"coworking-reservation-backend/internal/model"
	"coworking-reservation-backend/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			RateLimitPerSec: 1000,
			RateLimitBurst:  1000,
			CacheTTLSeconds: 1,
		},
		Booking: config.BookingConfig{
			MinDuration: 30 * time.Minute,
		},
	}
}

// setupTestRouter boots the full router against a per-test in-memory SQLite
// database.
func setupTestRouter(t *testing.T) (*gin.Engine, store.Store) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(
		&model.Room{},
		&model.Reservation{},
		&model.WatchSubscription{},
	))

	s := store.NewGormStore(db)
	return NewRouter(s, testConfig(), nil), s
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createTestRoom(t *testing.T, router *gin.Engine, name string, capacity int) model.Room {
	w := doJSON(router, http.MethodPost, "/api/rooms", gin.H{
		"name":     name,
		"capacity": capacity,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var room model.Room
	decodeBody(t, w, &room)
	return room
}

func reservationBody(roomID int64, start, end time.Time) gin.H {
	return gin.H{
		"responsible": "Ana Silva",
		"document":    "12345678",
		"email":       "ana@example.com",
		"startTime":   start.Format(time.RFC3339),
		"endTime":     end.Format(time.RFC3339),
		"roomId":      roomID,
	}
}
