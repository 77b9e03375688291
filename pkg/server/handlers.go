package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shouni/gemini-relay/pkg/domain"
	"github.com/shouni/gemini-relay/pkg/generator"
)

func (s *Server) handleAskText(w http.ResponseWriter, r *http.Request) {
	var q domain.TextQuery
	if err := s.decode(w, r, &q); err != nil {
		s.writeError(w, r, err)
		return
	}

	ans, err := s.text.AskText(r.Context(), q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ans)
}

func (s *Server) handleAskImage(w http.ResponseWriter, r *http.Request) {
	var q domain.ImageQuery
	if err := s.decode(w, r, &q); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.image.AskImage(r.Context(), q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Health{Status: domain.StatusRunning, Model: s.opts.Model})
}

// decode はボディ上限を適用して JSON を v に読み込みます。失敗は KindInvalidQuery です。
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return generator.InvalidQuery(fmt.Errorf("request body exceeds %d bytes", maxErr.Limit))
		}
		return generator.InvalidQuery(fmt.Errorf("invalid JSON body: %w", err))
	}
	return nil
}

// statusFor は失敗の分類を HTTP ステータスに対応付けます。
func statusFor(err error) int {
	switch generator.KindOf(err) {
	case generator.KindInvalidQuery:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "リクエストの処理に失敗しました",
			"path", r.URL.Path, "kind", generator.KindOf(err).String(), "error", err, "request_id", requestIDFrom(r.Context()))
	}
	writeJSON(w, status, domain.ErrorBody{Detail: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("レスポンスの書き込みに失敗しました", "error", err)
	}
}
