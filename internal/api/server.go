package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"seoKeywordAnalyzerGO/internal/agent"
	"seoKeywordAnalyzerGO/internal/analyzer"
	"seoKeywordAnalyzerGO/internal/config"
	"seoKeywordAnalyzerGO/internal/middleware"
	"seoKeywordAnalyzerGO/internal/models"
	"seoKeywordAnalyzerGO/internal/stats"
)

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	analyzer   *analyzer.Analyzer
	dispatcher *agent.Dispatcher
	tracker    *stats.Tracker
	logger     *slog.Logger
	config     *config.Config
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	seoAnalyzer := analyzer.New(cfg.Fetcher, logger)

	s := &Server{
		router: router,
		httpServer: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		analyzer:   seoAnalyzer,
		dispatcher: agent.New(seoAnalyzer, logger),
		tracker:    stats.NewTracker(),
		logger:     logger,
		config:     cfg,
	}

	s.registerRoutes()

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// registerRoutes sets up all the routes for the server
func (s *Server) registerRoutes() {
	// Health check
	s.router.GET("/health", s.healthHandler)

	rateLimiter := middleware.NewRateLimiter(s.config.RateLimit)

	api := s.router.Group("/api")
	api.Use(rateLimiter.RateLimit())
	{
		// Run one analysis from explicit inputs
		api.POST("/analyze", s.analyzeHandler)

		// Run one analysis from a natural-language instruction
		api.POST("/agent", s.agentHandler)

		// Canonical example inputs for form presets
		api.GET("/examples", s.examplesHandler)

		// In-memory service counters
		api.GET("/statistics", s.statisticsHandler)
	}
}

// healthHandler handles health check requests
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// analyzeHandler runs the analysis pipeline for the four inputs. Analysis
// failures are not transport failures: they come back with status 200 as
// report-shaped text, so a display surface can always just show the report
// field. Only a malformed request body gets a 400.
func (s *Server) analyzeHandler(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			Error:      err.Error(),
		})
		return
	}

	start := time.Now()
	result, err := s.analyzer.Run(c.Request.Context(), req)
	s.tracker.TrackAnalysis(time.Since(start), err != nil)

	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"url":    req.URL,
			"report": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":    result.URL,
		"report": result.Report,
		"result": result,
	})
}

// agentHandler accepts an instruction, dispatches the recognized intent to
// the analyzer and forwards the report verbatim.
func (s *Server) agentHandler(c *gin.Context) {
	var req struct {
		Instruction string `json:"instruction" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			Error:      err.Error(),
		})
		return
	}

	start := time.Now()
	report, err := s.dispatcher.Handle(c.Request.Context(), req.Instruction)
	if err != nil {
		if errors.Is(err, agent.ErrUnknownIntent) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				StatusCode: http.StatusBadRequest,
				Message:    "Instruction not understood",
				Error:      err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    "Failed to handle instruction",
			Error:      err.Error(),
		})
		return
	}
	s.tracker.TrackAnalysis(time.Since(start), false)

	c.JSON(http.StatusOK, gin.H{
		"report": report,
	})
}

// examplesHandler returns the preset inputs shipped with the original UI.
func (s *Server) examplesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"examples": []models.AnalysisRequest{
			{
				URL:              "https://www.ppmfinance.com.au/",
				PrimaryKeyword:   "business loans",
				SecondaryKeyword: "commercial finance",
				BrandName:        "PPM Finance",
			},
			{
				URL:              "https://www.example.com",
				PrimaryKeyword:   "digital marketing",
				SecondaryKeyword: "online advertising",
				BrandName:        "Example Corp",
			},
		},
	})
}

// statisticsHandler returns the in-memory service counters.
func (s *Server) statisticsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.tracker.Snapshot())
}
