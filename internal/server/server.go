package server

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Geetheshwar420/RandomWalk/internal/access"
	"github.com/Geetheshwar420/RandomWalk/internal/chart"
	"github.com/Geetheshwar420/RandomWalk/internal/config"
	"github.com/Geetheshwar420/RandomWalk/internal/dataset"
	"github.com/Geetheshwar420/RandomWalk/internal/downloadlog"
	"github.com/Geetheshwar420/RandomWalk/internal/session"
	"github.com/Geetheshwar420/RandomWalk/internal/walk"
)

const sessionCookie = "rw_session"

// maxUploadBytes caps uploaded spreadsheet size.
const maxUploadBytes = 10 << 20

// Server serves the random walk explorer page.
type Server struct {
	store      downloadlog.Store
	sessions   *session.Manager
	adminToken string
	chartW     int
	chartH     int
	server     *http.Server
}

// NewServer wires the page server to its store and session manager.
func NewServer(cfg *config.Config, store downloadlog.Store, sessions *session.Manager) *Server {
	s := &Server{
		store:      store,
		sessions:   sessions,
		adminToken: cfg.AdminToken,
		chartW:     cfg.Chart.Width,
		chartH:     cfg.Chart.Height,
	}
	s.server = &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", s.handleUpload)
	mux.HandleFunc("/generate", s.handleGenerate)
	mux.HandleFunc("/data", s.handleData)
	mux.HandleFunc("/chart.png", s.handleChart)
	mux.HandleFunc("/download", s.handleDownload)
	mux.HandleFunc("/admin/log.csv", s.handleLogExport)
	mux.HandleFunc("/", s.handleRoot)
	return mux
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	log.Printf("[INFO] listening on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// sessionID returns the request's session ID, issuing a cookie if needed.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := s.sessions.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.renderPage(w, r, s.sessionID(w, r), "")
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := s.sessionID(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, fh, err := r.FormFile("file")
	if err != nil {
		s.sessions.Clear(id)
		s.renderPage(w, r, id, "No file received, please choose a file to upload.")
		return
	}
	defer file.Close()

	series, err := dataset.Load(fh.Filename, file)
	if err != nil {
		// A failed upload leaves no dataset loaded.
		s.sessions.Clear(id)
		s.renderPage(w, r, id, fmt.Sprintf("Error reading file: %v", err))
		return
	}
	s.sessions.Put(id, series)
	log.Printf("[INFO] upload accepted: %s (%d rows)", fh.Filename, len(series))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := s.sessionID(w, r)
	s.sessions.Put(id, walk.Generate())
	log.Println("[INFO] default random walk generated")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := s.sessionID(w, r)

	series, err := dataset.ParseEdited(r.FormValue("rows"))
	if err != nil {
		s.renderPage(w, r, id, fmt.Sprintf("Invalid data: %v", err))
		return
	}
	s.sessions.Put(id, series)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	series, ok := s.sessions.Get(id)
	if !ok {
		http.Error(w, "no dataset loaded", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := chart.RenderPNG(series, r.URL.Query().Get("title"), s.chartW, s.chartH, w); err != nil {
		log.Printf("[ERROR] render chart: %v", err)
	}
}

// handleDownload records the download event and serves the PNG as an
// attachment. A storage failure is fatal to the request: the event
// must not be silently lost.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := s.sessionID(w, r)
	series, ok := s.sessions.Get(id)
	if !ok {
		s.renderPage(w, r, id, "Please upload a file or generate the default random walk first.")
		return
	}

	name := r.FormValue("name")
	title := r.FormValue("title")

	if err := s.store.Append(name, title); err != nil {
		log.Printf("[ERROR] record download: %v", err)
		http.Error(w, "failed to record download", http.StatusInternalServerError)
		return
	}
	if strings.TrimSpace(name) != "" {
		log.Printf("[INFO] download recorded: name=%q title=%q", strings.TrimSpace(name), title)
	}

	filename := chart.Filename(title) + ".png"
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := chart.RenderPNG(series, title, s.chartW, s.chartH, w); err != nil {
		log.Printf("[ERROR] render chart: %v", err)
	}
}

func (s *Server) handleLogExport(w http.ResponseWriter, r *http.Request) {
	state := access.Evaluate(true, r.URL.Query().Get("token"), s.adminToken)
	if state != access.Authorized {
		http.Error(w, "unauthorized", http.StatusForbidden)
		return
	}
	entries, err := s.store.ReadAll()
	if err != nil {
		log.Printf("[ERROR] read download log: %v", err)
		http.Error(w, "failed to read download log", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="download_log.csv"`)
	cw := csv.NewWriter(w)
	cw.Write([]string{"timestamp", "name", "title"})
	for _, e := range entries {
		cw.Write([]string{e.Timestamp, e.Name, e.Title})
	}
	cw.Flush()
}
