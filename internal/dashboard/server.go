// Package dashboard serves a read-only web view over saved test reports: an
// HTML index page plus a small JSON API the page polls.
package dashboard

import (
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pydesktop/pytestgen/internal/report"
	"github.com/pydesktop/pytestgen/internal/utils"
)

// maxPortAttempts bounds the fallback scan when the requested port is taken.
const maxPortAttempts = 10

// Server exposes saved reports over HTTP. It never writes to the report
// directory.
type Server struct {
	reportDir string
	diag      *utils.DiagnosticSystem
	engine    *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithDiagnostics sets the diagnostic sink.
func WithDiagnostics(diag *utils.DiagnosticSystem) Option {
	return func(s *Server) {
		s.diag = diag
	}
}

// New creates a dashboard server over a report directory.
func New(reportDir string, opts ...Option) *Server {
	s := &Server{
		reportDir: reportDir,
		diag:      utils.NewQuietDiagnostics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/", s.handleIndex)
	engine.GET("/api/test-reports", s.handleListReports)
	engine.GET("/api/test-report/:id", s.handleGetReport)

	s.engine = engine
	return s
}

// Handler returns the HTTP handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run binds to the first free port at or above the requested one and serves
// until the listener fails. The bound address is logged before serving.
func (s *Server) Run(port int) error {
	listener, boundPort, err := s.listen(port)
	if err != nil {
		return err
	}
	s.diag.Success("Dashboard running at http://localhost:%d", boundPort)
	s.diag.Info("Serving reports from %s", s.reportDir)
	return s.engine.RunListener(listener)
}

func (s *Server) listen(port int) (net.Listener, int, error) {
	for attempt := 0; attempt < maxPortAttempts; attempt++ {
		candidate := port + attempt
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", candidate))
		if err == nil {
			return listener, candidate, nil
		}
		s.diag.Warn("Port %d unavailable, trying %d", candidate, candidate+1)
	}
	return nil, 0, fmt.Errorf("no free port in range %d-%d", port, port+maxPortAttempts-1)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// handleListReports returns the summary of every saved report, newest first.
func (s *Server) handleListReports(c *gin.Context) {
	reports, err := report.LoadDir(s.reportDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	summaries := make([]report.Summary, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, r.Summary())
	}
	c.JSON(http.StatusOK, summaries)
}

// handleGetReport returns one full report by ID, including per-test entries.
func (s *Server) handleGetReport(c *gin.Context) {
	id := c.Param("id")
	reports, err := report.LoadDir(s.reportDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for _, r := range reports {
		if r.ID == id {
			c.JSON(http.StatusOK, r)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("report %s not found", id)})
}
