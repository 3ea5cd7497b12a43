package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scorecard-system/backend/internal/academic"
	"github.com/scorecard-system/backend/internal/services"
	"gorm.io/gorm"
)

type LeaderboardHandler struct {
	leaderboard *services.LeaderboardService
}

func NewLeaderboardHandler(db *gorm.DB) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: services.NewLeaderboardService(db)}
}

// ClassStudents ranks the students of one class for the given academic
// year (defaults to the current one).
func (h *LeaderboardHandler) ClassStudents(c *gin.Context) {
	classID, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	year := c.Query("academic_year")
	if year == "" {
		year = academic.CurrentYear(nowUTC())
	}

	ranked, err := h.leaderboard.RankStudentsInClass(classID, year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}

func (h *LeaderboardHandler) TopClasses(c *gin.Context) {
	ranked, err := h.leaderboard.TopClasses()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}

func (h *LeaderboardHandler) BestClass(c *gin.Context) {
	best, err := h.leaderboard.BestPerformingClass()
	if err != nil {
		respondError(c, err)
		return
	}
	if best == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No classes recorded yet"})
		return
	}
	c.JSON(http.StatusOK, best)
}

func (h *LeaderboardHandler) AllStudents(c *gin.Context) {
	ranked, err := h.leaderboard.RankAllStudents()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}

func (h *LeaderboardHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.leaderboard.BuildDashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
