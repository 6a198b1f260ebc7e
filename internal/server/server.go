// Package server exposes the conversion engine over HTTP.
package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/roboco-io/exam2hwpx/internal/config"
	"github.com/roboco-io/exam2hwpx/internal/hwpx"
	"github.com/roboco-io/exam2hwpx/internal/question"
)

// Server handles JSON → HWPX conversion requests.
type Server struct {
	cfg *config.Config
}

// New creates a server with the given configuration.
func New(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{cfg: cfg}
}

// ConvertRequest is the POST /convert request body.
type ConvertRequest struct {
	Title          string            `json:"title"`
	Questions      []question.Record `json:"questions"`
	TemplateBase64 string            `json:"template_base64"`
}

// ConvertResponse is the success response body.
type ConvertResponse struct {
	Success  bool   `json:"success"`
	Mode     string `json:"mode"`
	Filename string `json:"filename"`
	Data     string `json:"data"` // base64 encoded hwpx
	Size     int    `json:"size"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the HTTP handler for the conversion API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/convert", s.handleConvert)
	return mux
}

// ListenAndServe starts the HTTP server on the configured address.
func (s *Server) ListenAndServe() error {
	log.Printf("변환 서버 시작: %s", s.cfg.Server.Addr)
	return http.ListenAndServe(s.cfg.Server.Addr, s.Handler())
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	s.applyCORS(w, r)

	// OPTIONS preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST 요청만 지원합니다"})
		return
	}

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON 요청 본문이 필요합니다"})
		return
	}
	if len(req.Questions) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "변환할 문제가 없습니다"})
		return
	}
	if req.TemplateBase64 == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "template_base64가 필요합니다 (템플릿 기반 변환만 지원합니다)"})
		return
	}

	templateBytes, err := base64.StdEncoding.DecodeString(req.TemplateBase64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "template_base64 디코딩 실패"})
		return
	}

	title := req.Title
	if title == "" {
		title = s.cfg.Output.Title
	}

	out, err := hwpx.Assemble(templateBytes, req.Questions, title)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, hwpx.ErrInvalidTemplate) || errors.Is(err, hwpx.ErrEmptyInput) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: fmt.Sprintf("변환 실패: %v", err)})
		return
	}

	filename := fmt.Sprintf("%s_%s.hwpx", title, time.Now().Format("2006-01-02"))
	log.Printf("변환 완료: %s (%d bytes, 문제 %d개)", filename, len(out), len(req.Questions))

	writeJSON(w, http.StatusOK, ConvertResponse{
		Success:  true,
		Mode:     "template",
		Filename: filename,
		Data:     base64.StdEncoding.EncodeToString(out),
		Size:     len(out),
	})
}

func (s *Server) applyCORS(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}
	for _, allowed := range s.cfg.Server.CORSOrigins {
		if matchOrigin(allowed, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			return
		}
	}
}

// matchOrigin matches an allowed-origin pattern that may contain a single
// wildcard, e.g. "https://*.vercel.app".
func matchOrigin(pattern, origin string) bool {
	star := strings.Index(pattern, "*")
	if star == -1 {
		return pattern == origin
	}
	prefix, suffix := pattern[:star], pattern[star+1:]
	return len(origin) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(origin, prefix) &&
		strings.HasSuffix(origin, suffix)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("응답 직렬화 실패: %v", err)
	}
}
