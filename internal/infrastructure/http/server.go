package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"like-service/internal/application"
	"like-service/internal/domain"
	"like-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgInternalError    = "Internal Server Error"
)

type Server struct {
	svc  *application.LikeService
	ping func(ctx context.Context) error
}

func NewServer(svc *application.LikeService) *Server { return &Server{svc: svc} }

// SetReadyCheck installs the probe behind /readyz.
func (s *Server) SetReadyCheck(fn func(ctx context.Context) error) { s.ping = fn }

type likeResponse struct {
	Count int64 `json:"count"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Like serves /api/like: GET reads the counter, POST increments it.
func (s *Server) Like(w http.ResponseWriter, r *http.Request) {
	var (
		n   int64
		err error
	)
	switch r.Method {
	case http.MethodGet:
		n, err = s.svc.Count(r.Context())
	case http.MethodPost:
		n, err = s.svc.Like(r.Context())
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}
	if err != nil {
		logx.WithFields(r.Context()).Error("like request failed",
			zap.String("method", r.Method),
			zap.String("key", s.svc.Key()),
			zap.Bool("store_unavailable", errors.Is(err, domain.ErrStoreUnavailable)),
			zap.Error(err),
		)
		internalError(w)
		return
	}
	writeJSON(w, http.StatusOK, likeResponse{Count: n})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg})
}

func internalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, msgInternalError)
}
