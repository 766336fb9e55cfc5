package http

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// GET /
func Banner(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "EV Parts Store Backend Running"})
}

type StatusHandler struct {
	db    *mongo.Database
	redis *redis.Client
}

func NewStatusHandler(db *mongo.Database, redisClient *redis.Client) *StatusHandler {
	return &StatusHandler{
		db:    db,
		redis: redisClient,
	}
}

type StatusResponse struct {
	Backend  string `json:"backend"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// GET /health
func (h *StatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := StatusResponse{
		Backend:  "ok",
		Database: "ok",
		Cache:    "ok",
	}

	if err := h.db.Client().Ping(ctx, nil); err != nil {
		resp.Database = "unreachable"
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		resp.Cache = "unreachable"
	}

	status := http.StatusOK
	if resp.Database != "ok" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, resp)
}
