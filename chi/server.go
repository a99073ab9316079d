// Package chi serves the analyzer as a local web page using the chi router.
package chi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fwojciec/callscore"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// MaxUploadSize bounds the multipart body accepted by POST /upload.
const MaxUploadSize = 32 << 20

// Session is the state the server drives.
type Session interface {
	SelectFile(ctx context.Context, doc *callscore.Document) error
	Analyze(ctx context.Context) (*callscore.Report, error)
}

// Server routes browser and API requests to a single shared session.
type Server struct {
	session   Session
	view      *View
	presenter callscore.PagePresenter
	logger    *slog.Logger
	router    chi.Router
}

// NewServer creates a server. The view must be the display the session
// was created with.
func NewServer(session Session, view *View, presenter callscore.PagePresenter, logger *slog.Logger) *Server {
	s := &Server{
		session:   session,
		view:      view,
		presenter: presenter,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", s.wrap(s.handleIndex))
	r.Post("/upload", s.wrap(s.handleUpload))
	r.Post("/analyze", s.wrap(s.handleAnalyze))
	r.Get("/api/state", s.wrap(s.handleState))

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (s *Server) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		code := callscore.ErrorCode(err)
		if code == callscore.EINTERNAL {
			s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		}

		if !wantsJSON(r) && r.Method == http.MethodPost {
			// The session has already alerted the view.
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		writeJSON(w, statusFor(code), errorResponse{
			Code:  code,
			Error: callscore.ErrorMessage(err),
		})
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) error {
	page, err := s.presenter.Page(s.view.State())
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = io.WriteString(w, page)
	return err
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.view.Alert("Please choose a file to upload.")
		return callscore.Errorf(callscore.EINVALID, "file required: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.view.Alert("Could not read file: " + err.Error())
		return callscore.Errorf(callscore.EINVALID, "cannot read upload: %v", err)
	}

	doc := callscore.NewDocument(header.Filename, header.Header.Get("Content-Type"), data)
	if err := s.session.SelectFile(r.Context(), doc); err != nil {
		return err
	}
	return s.respond(w, r)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) error {
	if _, err := s.session.Analyze(r.Context()); err != nil {
		return err
	}
	return s.respond(w, r)
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) error {
	state, err := s.stateResponse()
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, state)
	return nil
}

// respond redirects form posts back to the page and answers API clients
// with the current state.
func (s *Server) respond(w http.ResponseWriter, r *http.Request) error {
	if !wantsJSON(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}
	return s.handleState(w, r)
}

type stateResponse struct {
	File           string `json:"file,omitempty"`
	Status         string `json:"status"`
	TriggerLabel   string `json:"trigger_label"`
	TriggerEnabled bool   `json:"trigger_enabled"`
	Alert          string `json:"alert,omitempty"`
	Valid          bool   `json:"valid"`
	Report         string `json:"report,omitempty"`
	ReportText     string `json:"report_text,omitempty"`
}

func (s *Server) stateResponse() (*stateResponse, error) {
	v := s.view.State()
	resp := &stateResponse{
		File:           v.FileName,
		Status:         v.Status.String(),
		TriggerLabel:   v.Status.TriggerLabel(),
		TriggerEnabled: v.Status.TriggerEnabled(),
		Alert:          v.Alert,
		Valid:          v.Report.Valid(),
	}
	if v.Report != nil {
		out, err := s.presenter.Present(v.Report)
		if err != nil {
			return nil, err
		}
		resp.Report = out
		resp.ReportText = callscore.FormatReport(v.Report)
	}
	return resp, nil
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func statusFor(code string) int {
	switch code {
	case callscore.EINVALID:
		return http.StatusBadRequest
	case callscore.ENOTFOUND:
		return http.StatusNotFound
	case callscore.ECONFLICT:
		return http.StatusConflict
	case callscore.EEXTRACT:
		return http.StatusUnprocessableEntity
	case callscore.ESERVER, callscore.EMALFORMED, callscore.ETRANSPORT:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
