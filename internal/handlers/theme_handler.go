package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/scorecard-system/backend/internal/services"
	"gorm.io/gorm"
)

type ThemeHandler struct {
	themes *services.ThemeService
}

func NewThemeHandler(db *gorm.DB) *ThemeHandler {
	return &ThemeHandler{themes: services.NewThemeService(db)}
}

func (h *ThemeHandler) List(c *gin.Context) {
	themes, err := h.themes.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, themes)
}

type themeRequest struct {
	Label   string   `json:"label" binding:"required"`
	MinMark *float64 `json:"min_mark" binding:"required"`
	MaxMark *float64 `json:"max_mark" binding:"required"`
}

func (h *ThemeHandler) Create(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, err := h.themes.Upsert(nil, req.Label, *req.MinMark, *req.MaxMark)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, theme)
}

func (h *ThemeHandler) Update(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, err := h.themes.Upsert(&id, req.Label, *req.MinMark, *req.MaxMark)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, theme)
}

func (h *ThemeHandler) Delete(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	if err := h.themes.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Theme deleted"})
}

// Classify maps an arbitrary score onto the configured bands.
func (h *ThemeHandler) Classify(c *gin.Context) {
	score, err := strconv.ParseFloat(c.Query("score"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid score"})
		return
	}

	label, err := h.themes.Classify(score)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": score, "theme": label})
}
