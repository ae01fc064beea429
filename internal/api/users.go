package api

import (
	"errors"
	"net/http"
	"strings"

	"levelup_backend/internal/model"
	"levelup_backend/internal/service"
	"levelup_backend/pkg/auth"
	"levelup_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type userRoutes struct {
	us service.UserServiceI
	a  *auth.SessionAuth
}

func NewUserRoutes(handler *gin.RouterGroup, us service.UserServiceI, a *auth.SessionAuth) {
	r := &userRoutes{us: us, a: a}

	public := handler.Group("/auth")
	{
		public.POST("/register", r.Register)
		public.POST("/login", r.Login)
	}

	private := handler.Group("/")
	private.Use(a.Middleware())
	{
		private.POST("/auth/logout", r.Logout)
		private.GET("/profile", r.GetProfile)
		private.PATCH("/profile", r.UpdateProfile)
		private.DELETE("/profile", r.DeleteProfile)
		private.GET("/leaderboard", r.GetLeaderboard)
		private.POST("/score", r.AddScore)
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Quote    string `json:"quote"`
}

type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	Rank     string `json:"rank"`
}

func (r *userRoutes) Register(c *gin.Context) {
	log := logger.Logger()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := r.us.Register(c.Request.Context(), req.Username, req.Password, req.Quote)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
		default:
			log.Error("failed to register user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Level:    user.Level,
		Rank:     user.Rank,
	})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *userRoutes) Login(c *gin.Context) {
	log := logger.Logger()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := r.us.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		default:
			log.Error("failed to log in", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      session.Token.String(),
		"expires_at": session.ExpiresAt,
	})
}

func (r *userRoutes) Logout(c *gin.Context) {
	log := logger.Logger()

	header := c.GetHeader("Authorization")
	token, err := uuid.Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session token"})
		return
	}

	if err := r.us.Logout(c.Request.Context(), token); err != nil {
		log.Error("failed to log out", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (r *userRoutes) GetProfile(c *gin.Context) {
	log := logger.Logger()

	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, stats, err := r.us.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Error("failed to get profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                user.ID,
		"username":          user.Username,
		"quote":             user.Quote,
		"points":            user.Points,
		"level":             user.Level,
		"rank":              user.Rank,
		"age":               user.Age,
		"height_cm":         user.HeightCm,
		"weight_kg":         user.WeightKg,
		"fitness_level":     user.FitnessLevel,
		"registration_date": user.RegistrationDate,
		"stats": gin.H{
			"strength": stats.Strength,
			"finance":  stats.Finance,
			"wisdom":   stats.Wisdom,
			"growth":   stats.Growth,
			"mental":   stats.Mental,
		},
	})
}

type UpdateProfileRequest struct {
	Username     *string  `json:"username"`
	Quote        *string  `json:"quote"`
	Age          *int     `json:"age"`
	HeightCm     *float64 `json:"height_cm"`
	WeightKg     *float64 `json:"weight_kg"`
	FitnessLevel *string  `json:"fitness_level"`
}

func (r *userRoutes) UpdateProfile(c *gin.Context) {
	log := logger.Logger()

	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	update := model.ProfileUpdate{
		Username:     req.Username,
		Quote:        req.Quote,
		Age:          req.Age,
		HeightCm:     req.HeightCm,
		WeightKg:     req.WeightKg,
		FitnessLevel: req.FitnessLevel,
	}

	err := r.us.UpdateProfile(c.Request.Context(), userID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile fields"})
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			log.Error("failed to update profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (r *userRoutes) DeleteProfile(c *gin.Context) {
	log := logger.Logger()

	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	err := r.us.DeleteAccount(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Error("failed to delete account", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (r *userRoutes) GetLeaderboard(c *gin.Context) {
	log := logger.Logger()

	entries, err := r.us.GetLeaderboard(c.Request.Context())
	if err != nil {
		log.Error("failed to get leaderboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get leaderboard"})
		return
	}

	out := make([]gin.H, len(entries))
	for i, entry := range entries {
		out[i] = gin.H{
			"username": entry.Username,
			"points":   entry.Points,
			"level":    entry.Level,
			"rank":     entry.Rank,
		}
	}

	c.JSON(http.StatusOK, out)
}

type AddScoreRequest struct {
	Score int `json:"score"`
}

func (r *userRoutes) AddScore(c *gin.Context) {
	log := logger.Logger()

	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req AddScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	points, err := r.us.AddPoints(c.Request.Context(), userID, req.Score)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "score must not be negative"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			log.Error("failed to add score", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add score"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"new_points": points,
	})
}
