package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindJSON(t *testing.T, body string, dest interface{}) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(dest)
}

// A mark of 0 is a legitimate value and must pass required-field binding.
func TestScoreRequestsAcceptZero(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Class Mark", func(t *testing.T) {
		var req classMarkRequest
		if err := bindJSON(t, `{"academic_year":"2024-2025","item":"Cleanliness","score":0}`, &req); err != nil {
			t.Fatalf("zero score rejected: %v", err)
		}
		if req.Score == nil || *req.Score != 0 {
			t.Errorf("score = %v, want 0", req.Score)
		}
	})

	t.Run("Class Mark Edit", func(t *testing.T) {
		var req classMarkEditRequest
		if err := bindJSON(t, `{"item":"Cleanliness","score":0}`, &req); err != nil {
			t.Fatalf("zero score rejected: %v", err)
		}
	})

	t.Run("Extra Score", func(t *testing.T) {
		var req extraScoreRequest
		if err := bindJSON(t, `{"academic_year":"2024-2025","custom_name":"Chess","mark":0}`, &req); err != nil {
			t.Fatalf("zero mark rejected: %v", err)
		}
	})

	t.Run("Mentor Score", func(t *testing.T) {
		var req mentorScoreRequest
		if err := bindJSON(t, `{"academic_year":"2024-2025","mark":0}`, &req); err != nil {
			t.Fatalf("zero mark rejected: %v", err)
		}
	})

	t.Run("CCE Score", func(t *testing.T) {
		var req cceScoreRequest
		if err := bindJSON(t, `{"academic_year":"2024-2025","class_name":"7A","subject_name":"Maths","phase":"Phase 1","mark":0}`, &req); err != nil {
			t.Fatalf("zero mark rejected: %v", err)
		}
	})

	t.Run("PKV Mark", func(t *testing.T) {
		var req pkvMarkRequest
		if err := bindJSON(t, `{"academic_year":"2024-2025","semester":"Sem 1","phase":"Phase 1","mark":0}`, &req); err != nil {
			t.Fatalf("zero mark rejected: %v", err)
		}
	})
}

func TestScoreRequestsStillRequireMark(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var mark mentorScoreRequest
	if err := bindJSON(t, `{"academic_year":"2024-2025"}`, &mark); err == nil {
		t.Error("expected a missing mark to be rejected")
	}

	var score classMarkRequest
	if err := bindJSON(t, `{"academic_year":"2024-2025","item":"Cleanliness"}`, &score); err == nil {
		t.Error("expected a missing score to be rejected")
	}
}
