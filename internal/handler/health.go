package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/forgestack/atlas-backend/internal/version"
)

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	client *mongo.Client
}

func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		dbStatus = "down"
	}

	ok(c, "", gin.H{
		"status":   "ok",
		"database": dbStatus,
		"version":  version.Get(),
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
