package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"levelup_backend/internal/model"
	"levelup_backend/internal/service"
	"levelup_backend/pkg/auth"
	"levelup_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type questRoutes struct {
	qs service.QuestServiceI
	a  *auth.SessionAuth
}

func NewQuestRoutes(handler *gin.RouterGroup, qs service.QuestServiceI, a *auth.SessionAuth) {
	r := &questRoutes{qs: qs, a: a}

	g := handler.Group("/quests")
	g.Use(a.Middleware())
	{
		g.GET("", r.ListQuests)
		g.POST("/refresh", r.RefreshQuests)
		g.POST("/:id/complete", r.CompleteQuest)
	}
}

type QuestResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Period     string    `json:"period"`
	Difficulty string    `json:"difficulty"`
	XP         int       `json:"xp"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *questRoutes) ListQuests(c *gin.Context) {
	log := logger.Logger()

	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	period := model.Period(c.Query("period"))

	quests, err := r.qs.List(c.Request.Context(), userID, period)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "period must be daily, weekly or monthly"})
			return
		}
		log.Error("failed to list quests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list quests"})
		return
	}

	out := make([]QuestResponse, len(quests))
	for i, quest := range quests {
		out[i] = QuestResponse{
			ID:         quest.ID,
			Title:      quest.Title,
			Category:   quest.Category,
			Period:     string(quest.Period),
			Difficulty: quest.Difficulty,
			XP:         quest.XP,
			Completed:  quest.Completed,
			CreatedAt:  quest.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, out)
}

func (r *questRoutes) RefreshQuests(c *gin.Context) {
	log := logger.Logger()

	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	err := r.qs.Refresh(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Error("failed to refresh quests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh quests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (r *questRoutes) CompleteQuest(c *gin.Context) {
	log := logger.Logger()

	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	questID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quest id"})
		return
	}

	completion, err := r.qs.Complete(c.Request.Context(), userID, questID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "quest not found"})
		case errors.Is(err, service.ErrQuestAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": "quest already completed"})
		default:
			log.Error("failed to complete quest", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete quest"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quest_id": completion.QuestID,
		"points":   completion.Points,
		"level":    completion.Level,
		"rank":     completion.Rank,
	})
}
