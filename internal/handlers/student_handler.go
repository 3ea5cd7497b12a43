package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/scorecard-system/backend/internal/academic"
	"github.com/scorecard-system/backend/internal/models"
	"github.com/scorecard-system/backend/internal/scoring"
	"github.com/scorecard-system/backend/internal/services"
	"gorm.io/gorm"
)

type StudentHandler struct {
	db     *gorm.DB
	ledger *services.LedgerService
	themes *services.ThemeService
}

func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{
		db:     db,
		ledger: services.NewLedgerService(db),
		themes: services.NewThemeService(db),
	}
}

func (h *StudentHandler) List(c *gin.Context) {
	classID := c.Query("class_id")

	var students []models.Student
	query := h.db.Preload("Class").Order("created_at")
	if classID != "" {
		query = query.Where("class_id = ?", classID)
	}

	if err := query.Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Gender    string `json:"gender"`
		ClassID   string `json:"class_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	var class models.Class
	if err := h.db.First(&class, "id = ?", classID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Class not found"})
		return
	}

	// Admission numbers are sequential within the class.
	var count int64
	h.db.Model(&models.Student{}).Where("class_id = ?", classID).Count(&count)
	admissionNo := fmt.Sprintf("%s/%s/%03d", class.Name, academic.CurrentYear(nowUTC()), count+1)

	student := models.Student{
		AdmissionNo: admissionNo,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
		ClassID:     &classID,
	}

	if err := h.db.Create(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) Get(c *gin.Context) {
	id := c.Param("id")
	var student models.Student
	if err := h.db.Preload("Class").First(&student, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var student models.Student
	if err := h.db.First(&student, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Gender    string `json:"gender"`
		ClassID   string `json:"class_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FirstName != "" {
		student.FirstName = req.FirstName
	}
	if req.LastName != "" {
		student.LastName = req.LastName
	}
	if req.Gender != "" {
		student.Gender = req.Gender
	}
	if req.ClassID != "" {
		classID, err := uuid.Parse(req.ClassID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
			return
		}
		if err := h.db.First(&models.Class{}, "id = ?", classID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Class not found"})
			return
		}
		student.ClassID = &classID
	}

	if err := h.db.Save(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.db.Delete(&models.Student{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted"})
}

// Score marks are pointers so a legitimate zero mark still binds.
type extraScoreRequest struct {
	AcademicYear string   `json:"academic_year" binding:"required"`
	ProgramID    string   `json:"program_id"`
	CustomName   string   `json:"custom_name"`
	Mark         *float64 `json:"mark" binding:"required"`
}

type mentorScoreRequest struct {
	AcademicYear string   `json:"academic_year" binding:"required"`
	Mark         *float64 `json:"mark" binding:"required"`
}

type cceScoreRequest struct {
	AcademicYear string   `json:"academic_year" binding:"required"`
	ClassName    string   `json:"class_name" binding:"required"`
	SubjectName  string   `json:"subject_name" binding:"required"`
	Phase        string   `json:"phase" binding:"required"`
	Mark         *float64 `json:"mark" binding:"required"`
}

// AddExtraScore appends an extracurricular mark; repeats are allowed.
func (h *StudentHandler) AddExtraScore(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req extraScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var programID *uuid.UUID
	if req.ProgramID != "" {
		parsed, err := uuid.Parse(req.ProgramID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid program ID"})
			return
		}
		programID = &parsed
	}

	student, err := h.ledger.AddExtraScore(id, req.AcademicYear, programID, req.CustomName, *req.Mark)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// AddMentorScore upserts the mentor mark for the academic year.
func (h *StudentHandler) AddMentorScore(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req mentorScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.ledger.AddMentorScore(id, req.AcademicYear, *req.Mark)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// AddCceScore upserts a (subject, phase) assessment mark.
func (h *StudentHandler) AddCceScore(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req cceScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.ledger.AddCceScore(id, req.AcademicYear, req.ClassName, req.SubjectName, req.Phase, *req.Mark)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// GetScore returns the student's net score for one academic year, with the
// theme band applied at render time.
func (h *StudentHandler) GetScore(c *gin.Context) {
	id := c.Param("id")
	year := c.Query("year")
	if year == "" {
		year = academic.CurrentYear(nowUTC())
	}

	var student models.Student
	if err := h.db.First(&student, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	score := scoring.NetScoreForStudent(student, year)
	theme, err := h.themes.Classify(score)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"student_id":    student.ID,
		"academic_year": year,
		"net_score":     score,
		"theme":         theme,
	})
}
