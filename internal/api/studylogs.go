package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"levelup_backend/internal/service"
	"levelup_backend/pkg/auth"
	"levelup_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type studyLogRoutes struct {
	ss service.StudyLogServiceI
	a  *auth.SessionAuth
}

func NewStudyLogRoutes(handler *gin.RouterGroup, ss service.StudyLogServiceI, a *auth.SessionAuth) {
	r := &studyLogRoutes{ss: ss, a: a}

	g := handler.Group("/study-logs")
	g.Use(a.Middleware())
	{
		g.POST("", r.AddStudyLog)
		g.GET("", r.ListStudyLogs)
		g.DELETE("/:id", r.DeleteStudyLog)
	}
}

type AddStudyLogRequest struct {
	Subject   string `json:"subject"`
	Duration  int    `json:"duration"`
	Notes     string `json:"notes"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at"`
}

type StudyLogResponse struct {
	ID        int64     `json:"id"`
	Subject   string    `json:"subject"`
	Duration  int       `json:"duration"`
	Notes     string    `json:"notes"`
	StartedAt string    `json:"started_at,omitempty"`
	EndedAt   string    `json:"ended_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *studyLogRoutes) AddStudyLog(c *gin.Context) {
	log := logger.Logger()

	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req AddStudyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry, earned, total, err := r.ss.Add(c.Request.Context(), userID, req.Subject, req.Duration, req.Notes, req.StartedAt, req.EndedAt)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must not be negative"})
			return
		}
		log.Error("failed to add study log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add study log"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"log": StudyLogResponse{
			ID:        entry.ID,
			Subject:   entry.Subject,
			Duration:  entry.Duration,
			Notes:     entry.Notes,
			StartedAt: entry.StartedAt,
			EndedAt:   entry.EndedAt,
			CreatedAt: entry.CreatedAt,
		},
		"earned_points": earned,
		"total_points":  total,
	})
}

func (r *studyLogRoutes) ListStudyLogs(c *gin.Context) {
	log := logger.Logger()

	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logs, err := r.ss.List(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to list study logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list study logs"})
		return
	}

	out := make([]StudyLogResponse, len(logs))
	for i, entry := range logs {
		out[i] = StudyLogResponse{
			ID:        entry.ID,
			Subject:   entry.Subject,
			Duration:  entry.Duration,
			Notes:     entry.Notes,
			StartedAt: entry.StartedAt,
			EndedAt:   entry.EndedAt,
			CreatedAt: entry.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, out)
}

func (r *studyLogRoutes) DeleteStudyLog(c *gin.Context) {
	log := logger.Logger()

	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid study log id"})
		return
	}

	err = r.ss.Delete(c.Request.Context(), userID, logID)
	if err != nil {
		if errors.Is(err, service.ErrStudyLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "study log not found"})
			return
		}
		log.Error("failed to delete study log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete study log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
