package http

import (
	"net/http"

	"github.com/aussiebroadwan/forumhub/internal/forum/service"
	"github.com/aussiebroadwan/forumhub/pkg/forumsdk"
	"github.com/aussiebroadwan/forumhub/pkg/httpx"
	"github.com/aussiebroadwan/forumhub/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the bootstrap endpoint for initial setup.
//
//	@Summary		Bootstrap the forum
//	@Description	Creates the first super user. Only available when a bootstrap token is configured and no users exist yet.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Bootstrap token"
//	@Param			request				body		forumsdk.BootstrapRequest	true	"Super user credentials"
//	@Success		201					{object}	forumsdk.UserResponse
//	@Failure		400					{object}	forumsdk.ErrorResponse	"Invalid body or credentials too short"
//	@Failure		401					{object}	forumsdk.ErrorResponse	"Missing or invalid bootstrap token"
//	@Failure		404					{object}	forumsdk.ErrorResponse	"Bootstrap not enabled"
//	@Failure		409					{object}	forumsdk.ErrorResponse	"Users already exist"
//	@Router			/v1/bootstrap [post]
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slogx.FromContext(r.Context()).Info("bootstrap requested")

	// 1. Check if enabled
	if !h.BootstrapService.Enabled() {
		writeError(w, r, service.ErrBootstrapDisabled)
		return
	}

	// 2. Parse request body
	var req forumsdk.BootstrapRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	// 3. Create the super user
	u, err := h.BootstrapService.Bootstrap(r.Context(), r.Header.Get("X-Bootstrap-Token"), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUser(u))
}
