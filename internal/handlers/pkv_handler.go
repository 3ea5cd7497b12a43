package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scorecard-system/backend/internal/services"
	"gorm.io/gorm"
)

type PKVHandler struct {
	pkv *services.PKVService
}

func NewPKVHandler(db *gorm.DB) *PKVHandler {
	return &PKVHandler{pkv: services.NewPKVService(db)}
}

type pkvMarkRequest struct {
	AcademicYear string   `json:"academic_year" binding:"required"`
	Semester     string   `json:"semester" binding:"required"`
	Phase        string   `json:"phase" binding:"required"`
	Mark         *float64 `json:"mark" binding:"required"`
}

func (h *PKVHandler) AddMark(c *gin.Context) {
	studentID, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req pkvMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.pkv.Add(studentID, req.AcademicYear, req.Semester, req.Phase, *req.Mark)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *PKVHandler) UpdateMark(c *gin.Context) {
	studentID, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req pkvMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.pkv.Update(studentID, req.AcademicYear, req.Semester, req.Phase, *req.Mark)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *PKVHandler) Get(c *gin.Context) {
	studentID, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	record, err := h.pkv.Get(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

type semesterRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *PKVHandler) CreateSemester(c *gin.Context) {
	var req semesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	semester, err := h.pkv.CreateSemester(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, semester)
}

func (h *PKVHandler) LockSemester(c *gin.Context) {
	h.setLock(c, true)
}

func (h *PKVHandler) UnlockSemester(c *gin.Context) {
	h.setLock(c, false)
}

func (h *PKVHandler) setLock(c *gin.Context, locked bool) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Semester name is required"})
		return
	}

	semester, err := h.pkv.SetSemesterLock(name, locked)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, semester)
}

func (h *PKVHandler) ListSemesters(c *gin.Context) {
	semesters, err := h.pkv.ListSemesters()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, semesters)
}
