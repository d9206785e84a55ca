package ui

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"cargas/internal/config"
)

// Server is the web server that fronts the campaign transformation flows
type Server struct {
	router    *gin.Engine
	cfg       *config.Config
	downloads *downloadStore
}

// NewServer creates the server and wires its routes
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:    gin.Default(),
		cfg:       cfg,
		downloads: newDownloadStore(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Catalogues consumed by the form front end
	s.router.GET("/api/catalog", s.handleCatalog)

	// Transformation flows; each consumes a multipart upload and responds
	// with an attachment
	s.router.POST("/sms/process", s.handleSMSProcess)
	s.router.POST("/ivr/process", s.handleIVRProcess)
	s.router.POST("/ivr_crm/process", s.handleCRMProcess)
	s.router.POST("/gm/process", s.handleCollectionProcess)

	// Hipotecario keeps the two-step flow: process once, download each
	// generated file by token
	s.router.POST("/hipotecario/process", s.handleHipotecarioProcess)
	s.router.GET("/hipotecario/download/:token/:kind", s.handleHipotecarioDownload)
}

// Start runs the HTTP server until it fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.Server.Port)
	log.Printf("[Server] Listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
