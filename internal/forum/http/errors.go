package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/pkg/forumsdk"
	"github.com/aussiebroadwan/forumhub/pkg/httpx"
	"github.com/aussiebroadwan/forumhub/pkg/slogx"
)

// writeError maps an error kind onto a status code and writes the standard
// error body. Dependency and unknown errors never leak their cause.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, desc := classify(err)

	switch {
	case status >= http.StatusInternalServerError:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
	case status == http.StatusUnauthorized:
		httpx.SetBearerChallenge(w, desc)
	}

	httpx.WriteJSON(w, status, forumsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: desc,
	})
}

func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, httpx.ErrBadBody):
		return http.StatusBadRequest, forumsdk.ErrorCodeInvalidRequest, "Request body must be valid JSON"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, forumsdk.ErrorCodeUnauthenticated, describe(err)
	case errors.Is(err, domain.ErrAuthorization):
		return http.StatusForbidden, forumsdk.ErrorCodeForbidden, describe(err)
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, forumsdk.ErrorCodeValidation, describe(err)
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, forumsdk.ErrorCodeNotFound, describe(err)
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, forumsdk.ErrorCodeConflict, describe(err)
	case errors.Is(err, domain.ErrDependency):
		return http.StatusServiceUnavailable, forumsdk.ErrorCodeUnavailable, "A backing service is unavailable"
	default:
		return http.StatusInternalServerError, forumsdk.ErrorCodeServerError, "An internal error occurred"
	}
}

// describe drops the kind prefixes from a wrapped domain error, leaving the
// most specific message.
func describe(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
