package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"mission-stats/src/dates"
	"mission-stats/src/interfaces"
	"mission-stats/src/logger"
	"mission-stats/src/missions"
	"mission-stats/src/models"
	"mission-stats/src/utils"

	"github.com/gin-gonic/gin"
)

// snapshotHistory is how many pushed snapshots /api/snapshots can return.
const snapshotHistory = 64

// -----------------------------------------------------------------------------
// APIServer
// -----------------------------------------------------------------------------

type APIServer struct {
	Config   *models.MConfig
	Logger   *logger.Logger
	Source   interfaces.IStatsSource
	Missions *missions.Registry
	Window   *dates.WindowGenerator
	Calendar *utils.BusinessCalendar

	engine     *gin.Engine
	httpServer *http.Server

	// WebSocket clients, owned by the hub loop
	clients     map[*Client]struct{}
	connections atomic.Int64
	broadcast   chan models.MLatestData
	register    chan *Client
	unregister  chan *Client
	subscribe   chan *Client
	done        chan struct{}
	hubOnce     sync.Once
	stopOnce    sync.Once

	// Local cache
	latestState models.MLatestData
	snapshots   *utils.RingBuffer
	stateMutex  sync.RWMutex
}

var _ interfaces.IDataExchanger = (*APIServer)(nil)

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewAPIServer(cfg *models.MConfig, source interfaces.IStatsSource, registry *missions.Registry, logger *logger.Logger) *APIServer {
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &APIServer{
		Config:   cfg,
		Logger:   logger,
		Source:   source,
		Missions: registry,
		Window:   dates.NewWindowGenerator(nil, dates.ReferenceLocation),
		Calendar: utils.SeoulCalendar(),
		engine:   gin.New(),
		clients:  make(map[*Client]struct{}),
		// Buffered so bursts of snapshots do not block the poller
		broadcast:  make(chan models.MLatestData, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		subscribe:  make(chan *Client),
		done:       make(chan struct{}),
		latestState: models.MLatestData{
			Type:   "INITIAL",
			Videos: []models.MVideoStat{},
		},
		snapshots: utils.NewRingBuffer(snapshotHistory),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestLogger())

	// CORS for the local dashboard dev server
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") || strings.HasPrefix(origin, "http://localhost:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *APIServer) setupRoutes() {
	api := s.engine.Group("/api")
	api.GET("/health", s.getHealth)
	api.GET("/config", s.getConfig)
	api.GET("/routes", s.getRoutes)
	api.GET("/snapshots", s.getSnapshots)
	api.GET("/window", s.getWindow)
	api.GET("/format", s.getFormat)
	api.GET("/missions/:mission/videos", s.getMissionVideos)
	api.GET("/missions/:mission/videos/:videoId/history", s.getVideoHistory)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------

// Handler exposes the router, mainly for tests
func (s *APIServer) Handler() http.Handler {
	return s.engine
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *APIServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	s.startHub()

	s.stateMutex.Lock()
	s.httpServer = &http.Server{Addr: addr, Handler: s.engine}
	srv := s.httpServer
	s.stateMutex.Unlock()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// -----------------------------------------------------------------------------

func (s *APIServer) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		close(s.done)

		s.stateMutex.RLock()
		srv := s.httpServer
		s.stateMutex.RUnlock()
		if srv == nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = srv.Shutdown(ctx)
	})
	return err
}

// -----------------------------------------------------------------------------

func (s *APIServer) startHub() {
	s.hubOnce.Do(func() {
		go s.handleWebsockets()
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Logger.Debug("%s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
