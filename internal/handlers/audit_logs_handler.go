package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/httpresp"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

type AuditLogsQuery struct {
	Action string `form:"action" binding:"omitempty,max=50"`
	Entity string `form:"entity" binding:"omitempty,max=50"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type AuditLogPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	var q AuditLogsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 50
	}

	// --------------------------------------------------
	// always scoped to the calling restaurant
	// --------------------------------------------------

	logs, total, err := h.logs.List(c.Request.Context(), audit.Query{
		RestaurantID: actor.ID,
		Action:       q.Action,
		Entity:       q.Entity,
		Page:         q.Page,
		Limit:        q.Limit,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	httpresp.OK(c, httpresp.MsgAuditLogList, AuditLogPage{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Logs:  logs,
	})
}
