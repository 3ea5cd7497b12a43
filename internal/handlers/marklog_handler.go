package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scorecard-system/backend/internal/services"
	"gorm.io/gorm"
)

type MarkLogHandler struct {
	markLog *services.MarkLogService
}

func NewMarkLogHandler(db *gorm.DB) *MarkLogHandler {
	return &MarkLogHandler{markLog: services.NewMarkLogService(db)}
}

// ListForUser returns the mark history of one student or class, newest
// first. An empty academic_year query returns every year.
func (h *MarkLogHandler) ListForUser(c *gin.Context) {
	userID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	logs, err := h.markLog.ListForUser(userID, c.Query("academic_year"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
