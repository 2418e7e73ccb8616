// Package server exposes the résumé builder over HTTP for the browser form.
//
// The server keeps no state between requests. The browser holds the form and
// sends whatever a call needs.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikogura/resume-builder/pkg/export"
	"github.com/nikogura/resume-builder/pkg/llm"
	"github.com/rs/zerolog"
)

// Deps are the collaborators the handlers call into.
type Deps struct {
	// Enhancer may be nil, in which case /api/enhance answers 503.
	Enhancer llm.Enhancer
	Exporter *export.Exporter
	Logger   zerolog.Logger
	Now      func() time.Time
}

// Server holds the route handlers.
type Server struct {
	enhancer llm.Enhancer
	exporter *export.Exporter
	logger   zerolog.Logger
	now      func() time.Time
}

// New builds a Server, filling in the exporter and clock when unset.
func New(deps Deps) (s *Server) {
	s = &Server{
		enhancer: deps.Enhancer,
		exporter: deps.Exporter,
		logger:   deps.Logger,
		now:      deps.Now,
	}
	if s.exporter == nil {
		s.exporter = export.NewExporter()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Router returns the gin engine with middleware and routes registered.
func (s *Server) Router() (r *gin.Engine) {
	r = gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(s.logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/milestones", s.milestones)
	api.POST("/prefill", s.prefill)
	api.POST("/classify", s.classify)
	api.POST("/form", s.submitForm)
	api.POST("/preview", s.preview)
	api.POST("/enhance", s.enhance)
	api.POST("/export", s.export)

	return r
}

// HTTPServer wraps the router in an http.Server listening on addr.
func (s *Server) HTTPServer(addr string) (srv *http.Server) {
	srv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv
}
