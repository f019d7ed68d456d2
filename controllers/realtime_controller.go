package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lia-dsgnr/calo-tracker/middlewares"
	"github.com/lia-dsgnr/calo-tracker/services"
)

type RealtimeController struct {
	hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

var upgrader = websocket.Upgrader{
	// Local app: the UI is served from the same origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Connect upgrades to a websocket and streams data-change events until
// the client disconnects.
func (ctl *RealtimeController) Connect(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return // Upgrade already wrote the error response
	}

	client := &services.WSClient{UserID: user.ID, Conn: conn}
	ctl.hub.Register(client)
	defer ctl.hub.Unregister(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
