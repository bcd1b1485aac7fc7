// Package web exposes games over HTTP and websockets.
package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"text-rpg/internal/game"
	"text-rpg/internal/session"
)

// CookieName holds the session id for the JSON API.
const CookieName = "session_id"

// ActionRequest is the body of POST /api/action and of each websocket
// frame. EnemyName and EnemyHealth are accepted for older clients and
// ignored: battle state lives on the server.
type ActionRequest struct {
	Event       game.Event `json:"event" binding:"required"`
	Choice      int        `json:"choice"`
	EnemyName   string     `json:"enemy_name,omitempty"`
	EnemyHealth *int       `json:"enemy_health,omitempty"`
}

// Server routes requests to sessions in a Store.
type Server struct {
	store    *session.Store
	logger   *slog.Logger
	upgrader websocket.Upgrader
	// CookieMaxAge is the session cookie lifetime in seconds.
	CookieMaxAge int
}

// New returns a Server backed by store.
func New(store *session.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		CookieMaxAge: int((30 * time.Minute).Seconds()),
	}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog(), cors())

	r.GET("/healthz", s.health)
	r.GET("/ws", s.serveWS)

	api := r.Group("/api")
	{
		api.POST("/start_game", s.startGame)
		api.POST("/action", s.action)
		api.GET("/state", s.state)
	}
	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.store.Len()})
}

// startGame resets the caller's session if it still exists and creates a
// new one otherwise.
func (s *Server) startGame(c *gin.Context) {
	if id, err := c.Cookie(CookieName); err == nil && id != "" {
		resp, err := s.store.Reset(id)
		if err == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}
	id, resp := s.store.Create()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, id, s.CookieMaxAge, "/", "", false, true)
	s.logger.Info("session started", "id", id, "remote", c.ClientIP())
	c.JSON(http.StatusOK, resp)
}

func (s *Server) action(c *gin.Context) {
	id, ok := s.sessionID(c)
	if !ok {
		return
	}
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var resp game.Response
	err := s.store.With(id, func(g *game.Game) {
		resp = g.Handle(req.Event, req.Choice)
	})
	if err != nil {
		s.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) state(c *gin.Context) {
	id, ok := s.sessionID(c)
	if !ok {
		return
	}
	var resp game.Response
	err := s.store.With(id, func(g *game.Game) { resp = g.Current() })
	if err != nil {
		s.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// sessionID reads the session cookie, writing a 404 when it is absent.
func (s *Server) sessionID(c *gin.Context) (string, bool) {
	id, err := c.Cookie(CookieName)
	if err != nil || id == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no session; POST /api/start_game first"})
		return "", false
	}
	return id, true
}

func (s *Server) sessionError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.logger.Warn("request failed", "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// requestLog writes one Debug line per request.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
