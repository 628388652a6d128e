package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/pelayanandata/portal-go/config"
	"github.com/pelayanandata/portal-go/middleware"
	"github.com/pelayanandata/portal-go/response"
	"github.com/pelayanandata/portal-go/websocket"
)

var upgrader = gorilla.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		log.Println("WebSocket Origin:", r.Header.Get("Origin"))
		return true
	},
}

type WsHandler struct {
	hub *websocket.RequestHub
}

func NewWsHandler(hub *websocket.RequestHub) *WsHandler {
	return &WsHandler{hub: hub}
}

// StreamRequests upgrades the connection and streams lifecycle events.
// The token rides the query string because browsers cannot set headers on
// websocket dials.
func (h *WsHandler) StreamRequests(c *gin.Context) {
	claims, err := middleware.ParseToken(c.Query("token"))
	if err != nil || claims == nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	staff := false
	for _, role := range config.DataOfficerRoles {
		if claims.Role == role {
			staff = true
			break
		}
	}

	h.hub.Serve(conn, claims.UserID, staff)
}
