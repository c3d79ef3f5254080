package notification

import (
	"log"
	"net/http"
	"time"

	jwtsvc "github.com/JorgeWendell/fleetmanager-sub000/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Разрешаем подключения с любого origin (для dev)
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	hub        *Hub
	jwtService *jwtsvc.Service
}

func NewWSHandler(hub *Hub, jwtService *jwtsvc.Service) *WSHandler {
	return &WSHandler{hub: hub, jwtService: jwtService}
}

// HandleWebSocket upgrades the connection and keeps it registered until the
// client goes away.
//
// Endpoint: GET /ws/notifications?token=JWT_TOKEN
// Аутентификация через query parameter (WebSocket не поддерживает headers)
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	userID := claims.UserID
	h.hub.Register(userID, conn)
	log.Printf("user %d connected to notifications", userID)

	defer func() {
		h.hub.Unregister(userID)
		log.Printf("user %d disconnected from notifications", userID)
	}()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})

	go h.pingLoop(conn)
	h.readLoop(conn)
}

func (h *WSHandler) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}
	}
}

// readLoop drains client frames. Notification clients only listen; the read
// side exists to detect the close.
func (h *WSHandler) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
