package httpapi

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/Madmartigan1/zeldachat/internal/chat"
	"github.com/Madmartigan1/zeldachat/internal/store"
	"github.com/Madmartigan1/zeldachat/internal/transcribe"
	"github.com/Madmartigan1/zeldachat/internal/voice"
)

// Server is the HTTP surface of the assistant: the chat and
// transcription endpoints plus the static audio/video/frontend mounts
// the browser frontend expects.
type Server struct {
	chat        *chat.Client
	synth       *voice.Synthesizer
	transcriber *transcribe.Transcriber
	store       *store.Store
	defaultMode string
	frontendDir string
	mux         *http.ServeMux
}

// Config holds the server's collaborators and static directories.
type Config struct {
	Chat        *chat.Client
	Synthesizer *voice.Synthesizer
	Transcriber *transcribe.Transcriber
	Store       *store.Store
	DefaultMode string
	AudioDir    string
	VideoDir    string
	FrontendDir string
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(cfg Config) *Server {
	s := &Server{
		chat:        cfg.Chat,
		synth:       cfg.Synthesizer,
		transcriber: cfg.Transcriber,
		store:       cfg.Store,
		defaultMode: cfg.DefaultMode,
		frontendDir: cfg.FrontendDir,
		mux:         http.NewServeMux(),
	}
	s.routes(cfg.AudioDir, cfg.VideoDir, cfg.FrontendDir)
	return s
}

// ServeHTTP applies the CORS middleware around the mux. The frontend
// may be opened from file:// during development, so the policy is
// wide open.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes(audioDir, videoDir, frontendDir string) {
	s.mux.HandleFunc("POST /chat", s.handleChat)
	s.mux.HandleFunc("POST /transcribe", s.handleTranscribe)

	s.mux.Handle("/audio/", http.StripPrefix("/audio/", http.FileServer(http.Dir(audioDir))))
	s.mux.Handle("/video/", http.StripPrefix("/video/", http.FileServer(http.Dir(videoDir))))
	s.mux.Handle("/frontend/", http.StripPrefix("/frontend/", http.FileServer(http.Dir(frontendDir))))

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /favicon.ico", s.handleFavicon)

	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

// handleIndex serves the frontend page at the root URL.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(s.frontendDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}

func (s *Server) handleFavicon(w http.ResponseWriter, r *http.Request) {
	icon := filepath.Join(s.frontendDir, "zelda.PNG")
	if _, err := os.Stat(icon); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, icon)
}
