package ws_dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Event
}

type Controller struct {
	hub    *Hub
	logger *slog.Logger

	upgrader websocket.Upgrader
}

func NewController(hub *Hub) *Controller {
	return &Controller{
		hub:    hub,
		logger: slog.Default(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws", c.serveWS)
}

func (c *Controller) serveWS(ctx *gin.Context) {
	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		hub:  c.hub,
		conn: conn,
		send: make(chan Event, 4),
	}
	c.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump serializes interactions per connection: one widget-change
// message is fully rendered before the next is read.
func (cl *Client) readPump() {
	defer func() {
		cl.hub.unregister <- cl
		cl.conn.Close()
	}()

	for {
		_, raw, err := cl.conn.ReadMessage()
		if err != nil {
			break
		}

		var state WidgetState
		if err := json.Unmarshal(raw, &state); err != nil {
			cl.send <- Event{
				Type:    EventError,
				Payload: map[string]interface{}{"message": "malformed widget state"},
			}
			continue
		}

		cl.send <- cl.hub.renderView(context.Background(), state)
	}
}

func (cl *Client) writePump() {
	defer cl.conn.Close()

	for event := range cl.send {
		payload, err := json.Marshal(event)
		if err != nil {
			continue
		}
		if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			break
		}
	}
}
