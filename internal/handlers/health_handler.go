package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/reservation-api/internal/db"
)

type HealthHandler struct {
	db     *gorm.DB
	driver string
}

func NewHealthHandler(gdb *gorm.DB, driver string) *HealthHandler {
	return &HealthHandler{db: gdb, driver: driver}
}

// Check answers {server, <driver>} without the response envelope. A store
// failure is reported in the body; the status stays 200.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	store := "ok"
	if err := db.Ping(ctx, h.db); err != nil {
		store = "fail"
	}

	c.JSON(http.StatusOK, gin.H{
		"server": "ok",
		h.driver: store,
	})
}
