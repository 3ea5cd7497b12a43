package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scorecard-system/backend/internal/academic"
	"github.com/scorecard-system/backend/internal/models"
	"github.com/scorecard-system/backend/internal/scoring"
	"github.com/scorecard-system/backend/internal/services"
	"gorm.io/gorm"
)

type ClassHandler struct {
	db     *gorm.DB
	ledger *services.LedgerService
	themes *services.ThemeService
}

func NewClassHandler(db *gorm.DB) *ClassHandler {
	return &ClassHandler{
		db:     db,
		ledger: services.NewLedgerService(db),
		themes: services.NewThemeService(db),
	}
}

func (h *ClassHandler) List(c *gin.Context) {
	var classes []models.Class
	if err := h.db.Order("created_at").Find(&classes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) Create(c *gin.Context) {
	var req struct {
		Name     string   `json:"name" binding:"required"`
		IconURL  string   `json:"icon_url"`
		Subjects []string `json:"subjects"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class := models.Class{
		Name:     req.Name,
		IconURL:  req.IconURL,
		Subjects: req.Subjects,
	}
	if err := h.db.Create(&class).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, class)
}

func (h *ClassHandler) Get(c *gin.Context) {
	id := c.Param("id")
	var class models.Class
	if err := h.db.First(&class, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var class models.Class
	if err := h.db.First(&class, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}

	var req struct {
		Name    string `json:"name"`
		IconURL string `json:"icon_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != "" {
		class.Name = req.Name
	}
	if req.IconURL != "" {
		class.IconURL = req.IconURL
	}

	if err := h.db.Save(&class).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, class)
}

// Delete refuses to remove a class while any student still references it.
func (h *ClassHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var count int64
	if err := h.db.Model(&models.Student{}).Where("class_id = ?", id).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Class still has students assigned"})
		return
	}

	if err := h.db.Delete(&models.Class{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted"})
}

type classMarkRequest struct {
	AcademicYear string   `json:"academic_year" binding:"required"`
	Item         string   `json:"item" binding:"required"`
	Score        *float64 `json:"score" binding:"required"`
	Description  string   `json:"description"`
}

type classMarkEditRequest struct {
	Item        string   `json:"item" binding:"required"`
	Score       *float64 `json:"score" binding:"required"`
	Description string   `json:"description"`
}

func (h *ClassHandler) AddCredit(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req classMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, err := h.ledger.AddCredit(id, req.AcademicYear, req.Item, *req.Score, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) AddPenalty(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req classMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, err := h.ledger.AddPenalty(id, req.AcademicYear, req.Item, *req.Score, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) EditCredit(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	markID, ok := paramUUID(c, "markId")
	if !ok {
		return
	}
	var req classMarkEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, err := h.ledger.EditCredit(id, markID, req.Item, *req.Score, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) EditPenalty(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	markID, ok := paramUUID(c, "markId")
	if !ok {
		return
	}
	var req classMarkEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, err := h.ledger.EditPenalty(id, markID, req.Item, *req.Score, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) DeleteCredit(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	markID, ok := paramUUID(c, "markId")
	if !ok {
		return
	}

	class, err := h.ledger.DeleteCredit(id, markID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) DeletePenalty(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	markID, ok := paramUUID(c, "markId")
	if !ok {
		return
	}

	class, err := h.ledger.DeletePenalty(id, markID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) AddSubject(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, err := h.ledger.AddSubject(id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) DeleteSubject(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	class, err := h.ledger.DeleteSubject(id, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// GetScore returns the class net score (credits minus penalties) for one
// academic year, with the theme band applied at render time.
func (h *ClassHandler) GetScore(c *gin.Context) {
	id := c.Param("id")
	year := c.Query("year")
	if year == "" {
		year = academic.CurrentYear(nowUTC())
	}

	var class models.Class
	if err := h.db.First(&class, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}

	score := scoring.NetScoreForClass(class, year)
	theme, err := h.themes.Classify(score)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"class_id":      class.ID,
		"academic_year": year,
		"net_score":     score,
		"theme":         theme,
	})
}
