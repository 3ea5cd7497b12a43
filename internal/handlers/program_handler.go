package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/scorecard-system/backend/internal/services"
	"gorm.io/gorm"
)

type ProgramHandler struct {
	programs *services.ProgramService
}

func NewProgramHandler(db *gorm.DB) *ProgramHandler {
	return &ProgramHandler{programs: services.NewProgramService(db)}
}

type programRequest struct {
	Name            string      `json:"name" binding:"required"`
	Criteria        string      `json:"criteria"`
	StartDate       time.Time   `json:"start_date" binding:"required"`
	EndDate         time.Time   `json:"end_date" binding:"required"`
	EligibleClasses []uuid.UUID `json:"eligible_classes"`
}

func (h *ProgramHandler) Create(c *gin.Context) {
	var req programRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := h.programs.Create(req.Name, req.Criteria, req.StartDate, req.EndDate, req.EligibleClasses)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, program)
}

func (h *ProgramHandler) Update(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req programRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := h.programs.Update(id, req.Name, req.Criteria, req.StartDate, req.EndDate, req.EligibleClasses)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

func (h *ProgramHandler) Delete(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	if err := h.programs.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program deleted"})
}

func (h *ProgramHandler) Get(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	program, err := h.programs.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

// List returns all programs, optionally narrowed to those a class is
// eligible for via ?class_id=.
func (h *ProgramHandler) List(c *gin.Context) {
	var classID *uuid.UUID
	if raw := c.Query("class_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class_id"})
			return
		}
		classID = &id
	}

	programs, err := h.programs.List(classID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, programs)
}
