package web

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"text-rpg/internal/game"
	"text-rpg/internal/session"
)

// serveWS upgrades /ws?session=<id>. The current Response is sent on
// connect; after that every ActionRequest frame gets one Response frame.
func (s *Server) serveWS(c *gin.Context) {
	id := c.Query("session")
	if id == "" {
		if cookie, err := c.Cookie(CookieName); err == nil {
			id = cookie
		}
	}
	var current game.Response
	if err := s.store.With(id, func(g *game.Game) { current = g.Current() }); err != nil {
		s.sessionError(c, err)
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(current); err != nil {
		s.logger.Warn("websocket write failed", "id", id, "err", err)
		return
	}
	for {
		var req ActionRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("websocket read failed", "id", id, "err", err)
			}
			return
		}
		var resp game.Response
		err := s.store.With(id, func(g *game.Game) {
			resp = g.Handle(req.Event, req.Choice)
		})
		if errors.Is(err, session.ErrNotFound) {
			if err := conn.WriteJSON(gin.H{"error": err.Error()}); err != nil {
				s.logger.Warn("websocket write failed", "id", id, "err", err)
				return
			}
			msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "session expired")
			if err := conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
				s.logger.Warn("websocket close failed", "id", id, "err", err)
			}
			return
		}
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Warn("websocket write failed", "id", id, "err", err)
			return
		}
	}
}
