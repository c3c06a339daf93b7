package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github-insights/internal/common"
	"github-insights/internal/domain"
	"github-insights/internal/render"
	"github-insights/internal/service"

	"github.com/sirupsen/logrus"
)

// cacheControl mirrors the upstream caching policy: cards are fresh for
// an hour and may be served stale for a day while revalidating.
const cacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

// Server exposes the produced-artifact boundary over HTTP: the SVG/PNG
// card, the JSON stats pair, and the embed-code triple.
type Server struct {
	insights *service.InsightsService
	baseURL  string
	mux      *http.ServeMux
	log      *logrus.Entry
}

// New builds the HTTP server. baseURL is the externally visible origin
// used in embed snippets.
func New(insights *service.InsightsService, baseURL string) *Server {
	s := &Server{
		insights: insights,
		baseURL:  baseURL,
		mux:      http.NewServeMux(),
		log:      logrus.WithField("component", "server"),
	}

	s.mux.HandleFunc("GET /api/insights/{username}", s.handleInsights)
	s.mux.HandleFunc("GET /api/stats/{username}", s.handleStats)
	s.mux.HandleFunc("GET /api/embed/{username}", s.handleEmbed)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	s.log.WithFields(logrus.Fields{
		"method":   r.Method,
		"path":     r.URL.Path,
		"duration": time.Since(start).String(),
	}).Info("request handled")
}

func cardConfigFromRequest(r *http.Request, username string) render.CardConfig {
	query := r.URL.Query()
	opts := make(map[string]string, len(query))
	for key, values := range query {
		if len(values) > 0 {
			opts[key] = values[0]
		}
	}
	return render.BuildCardConfig(username, query.Get("theme"), opts)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	cfg := cardConfigFromRequest(r, username)

	stats, user, err := s.insights.Aggregate(r.Context(), username)
	if err != nil {
		s.writeError(w, username, err)
		return
	}

	svg := render.Render(stats, cfg, user)

	if r.URL.Query().Get("format") == "png" {
		data, err := render.RenderPNG(svg)
		if err != nil {
			s.writeError(w, username, err)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", cacheControl)
		w.Write(data)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", cacheControl)
	w.Write([]byte(svg))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	stats, user, err := s.insights.Aggregate(r.Context(), username)
	if err != nil {
		s.writeError(w, username, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", cacheControl)
	json.NewEncoder(w).Encode(struct {
		Stats *domain.Stats `json:"stats"`
		User  *domain.User  `json:"user"`
	}{stats, user})
}

func (s *Server) handleEmbed(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	cfg := cardConfigFromRequest(r, username)

	stats, user, err := s.insights.Aggregate(r.Context(), username)
	if err != nil {
		s.writeError(w, username, err)
		return
	}

	baseURL := s.baseURL
	if baseURL == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		baseURL = scheme + "://" + r.Host
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", cacheControl)
	json.NewEncoder(w).Encode(render.BuildEmbedCodes(stats, cfg, baseURL, user))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) writeError(w http.ResponseWriter, username string, err error) {
	status := http.StatusBadGateway
	switch {
	case common.IsNotFound(err):
		status = http.StatusNotFound
	case common.IsRateLimited(err):
		status = http.StatusTooManyRequests
	}

	var appErr *common.AppError
	message := err.Error()
	if errors.As(err, &appErr) {
		message = appErr.Message
		if appErr.Code == common.ErrCodeRender {
			status = http.StatusInternalServerError
		}
	}

	s.log.WithFields(logrus.Fields{
		"username": username,
		"status":   status,
	}).WithError(err).Warn("request failed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
