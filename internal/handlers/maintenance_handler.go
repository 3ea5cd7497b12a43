package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scorecard-system/backend/internal/services"
	"gorm.io/gorm"
)

type MaintenanceHandler struct {
	dedup *services.DedupService
}

func NewMaintenanceHandler(db *gorm.DB) *MaintenanceHandler {
	return &MaintenanceHandler{dedup: services.NewDedupService(db)}
}

// DedupCceMarks sweeps every student and collapses duplicated CCE mark
// groups and entries. Safe to run repeatedly.
func (h *MaintenanceHandler) DedupCceMarks(c *gin.Context) {
	report, err := h.dedup.Run()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
