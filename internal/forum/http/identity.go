package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/service"
	"github.com/aussiebroadwan/forumhub/pkg/forumsdk"
	"github.com/aussiebroadwan/forumhub/pkg/httpx"
)

// IdentityHandler serves registration and the session lifecycle.
type IdentityHandler struct {
	UserService    *service.UserService
	SessionService *service.SessionService
}

// HandleRegister handles POST /v1/auth/register
//
//	@Summary		Register
//	@Description	Creates a member account. Usernames are trimmed and lowercased.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		forumsdk.RegisterRequest	true	"Credentials"
//	@Success		201		{object}	forumsdk.UserResponse
//	@Failure		400		{object}	forumsdk.ErrorResponse	"Invalid body, short username or password"
//	@Failure		409		{object}	forumsdk.ErrorResponse	"Username already taken"
//	@Router			/v1/auth/register [post]
func (h *IdentityHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req forumsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUser(u))
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Log in
//	@Description	Checks the credentials and opens a session. The returned token is sent as a bearer token.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		forumsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	forumsdk.LoginResponse
//	@Failure		400		{object}	forumsdk.ErrorResponse
//	@Failure		401		{object}	forumsdk.ErrorResponse	"Invalid username or password"
//	@Router			/v1/auth/login [post]
func (h *IdentityHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req forumsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.SessionService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, forumsdk.LoginResponse{
		AccessToken: res.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(time.Until(res.ExpiresAt).Seconds()),
		ExpiresAt:   res.ExpiresAt,
		User:        toActor(res.Actor),
	})
}

// HandleLogout handles POST /v1/auth/logout
//
//	@Summary		Log out
//	@Description	Revokes the current session.
//	@Tags			Identity
//	@Success		204
//	@Failure		401	{object}	forumsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/auth/logout [post]
func (h *IdentityHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())
	if err := h.SessionService.Logout(r.Context(), p); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe handles GET /v1/auth/me
//
//	@Summary		Current user
//	@Description	Returns the caller with the role currently stored for them.
//	@Tags			Identity
//	@Produce		json
//	@Success		200	{object}	forumsdk.ActorResponse
//	@Failure		401	{object}	forumsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/auth/me [get]
func (h *IdentityHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toActor(actorFrom(r)))
}
