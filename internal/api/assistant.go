package api

import (
	"errors"
	"net/http"
	"time"

	"levelup_backend/internal/service"
	"levelup_backend/pkg/auth"
	"levelup_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type assistantRoutes struct {
	as *service.AssistantService
	cs *service.ChatService
	us service.UserServiceI
	a  *auth.SessionAuth
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is a single websocket frame on the assistant channel.
type Message struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

func NewAssistantRoutes(handler *gin.RouterGroup, as *service.AssistantService, cs *service.ChatService, us service.UserServiceI, a *auth.SessionAuth) {
	r := &assistantRoutes{as: as, cs: cs, us: us, a: a}

	g := handler.Group("/assistant")
	{
		// The browser websocket API cannot set headers, so the socket
		// authenticates with a token query parameter instead.
		g.GET("/ws", r.handleWebSocket)
	}

	private := g.Group("/")
	private.Use(a.Middleware())
	{
		private.POST("/command", r.Command)
		private.POST("/chat", r.Chat)
	}
}

type CommandRequest struct {
	Command string `json:"command"`
}

func (r *assistantRoutes) Command(c *gin.Context) {
	log := logger.Logger()

	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, _, err := r.us.GetProfile(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to get user for assistant", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process command"})
		return
	}

	response := r.as.Respond(req.Command, user.Username, time.Now())

	c.JSON(http.StatusOK, gin.H{"response": response})
}

type ChatRequest struct {
	Message string `json:"message"`
}

func (r *assistantRoutes) Chat(c *gin.Context) {
	log := logger.Logger()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	payload, err := r.cs.Ask(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message required"})
			return
		}
		log.Error("chat request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "chat upstream unavailable"})
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

func (r *assistantRoutes) handleWebSocket(c *gin.Context) {
	log := logger.Logger()

	token, err := uuid.Parse(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
		return
	}

	userID, err := r.us.Authenticate(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session invalid or expired"})
		return
	}

	user, _, err := r.us.GetProfile(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to get user for assistant socket", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open assistant channel"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	go r.handleAssistantLoop(conn, user.Username)
}

func (r *assistantRoutes) handleAssistantLoop(conn *websocket.Conn, username string) {
	log := logger.Logger()
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error("websocket unexpected close", zap.Error(err))
			}
			break
		}

		var message Message
		if err := json.Unmarshal(msg, &message); err != nil {
			log.Error("failed to unmarshal message", zap.Error(err))
			continue
		}

		switch message.Type {
		case "command":
			command, _ := message.Payload["command"].(string)
			response := r.as.Respond(command, username, time.Now())
			r.send(conn, Message{
				Type: "response",
				Payload: map[string]any{
					"response": response,
				},
			})

		case "ping":
			r.send(conn, Message{Type: "pong"})
		}
	}
}

func (r *assistantRoutes) send(conn *websocket.Conn, m Message) {
	log := logger.Logger()

	data, err := json.Marshal(m)
	if err != nil {
		log.Error("failed to marshal message", zap.Error(err))
		return
	}

	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Error("failed to write message", zap.Error(err))
	}
}
