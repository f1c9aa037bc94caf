package http

import (
	"net/http"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/service"
	"github.com/aussiebroadwan/forumhub/pkg/forumsdk"
	"github.com/aussiebroadwan/forumhub/pkg/httpx"
)

// ModerationHandler serves the moderator queue and super user role
// management.
type ModerationHandler struct {
	ModerationService *service.ModerationService
}

// HandleListFlagged handles GET /v1/moderation/flags
//
//	@Summary		Flagged posts
//	@Description	Returns flagged posts with author and thread, most recently flagged first.
//	@Tags			Moderation
//	@Produce		json
//	@Success		200	{object}	forumsdk.ListFlaggedResponse
//	@Failure		401	{object}	forumsdk.ErrorResponse
//	@Failure		403	{object}	forumsdk.ErrorResponse	"Moderator role required"
//	@Security		BearerAuth
//	@Router			/v1/moderation/flags [get]
func (h *ModerationHandler) HandleListFlagged(w http.ResponseWriter, r *http.Request) {
	views, err := h.ModerationService.ListFlagged(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := forumsdk.ListFlaggedResponse{Posts: make([]forumsdk.FlaggedPostResponse, len(views))}
	for i, v := range views {
		resp.Posts[i] = toFlagged(v)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleResolve handles POST /v1/moderation/posts/{postID}/resolve
//
//	@Summary		Resolve a post
//	@Description	Action "remove" deletes the post. Any other action approves it, clears the flag and stores the note.
//	@Tags			Moderation
//	@Accept			json
//	@Produce		json
//	@Param			postID	path		string					true	"Post ID"
//	@Param			request	body		forumsdk.ResolveRequest	true	"Decision"
//	@Success		200		{object}	forumsdk.ResolveResponse
//	@Failure		403		{object}	forumsdk.ErrorResponse
//	@Failure		404		{object}	forumsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/moderation/posts/{postID}/resolve [post]
func (h *ModerationHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req forumsdk.ResolveRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.ModerationService.ResolvePost(r.Context(), actorFrom(r), postID, domain.ParseResolveAction(req.Action), req.Note)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, forumsdk.ResolveResponse{
		PostID:  res.PostID,
		Action:  res.Action.String(),
		Note:    res.Note,
		Message: res.Message(),
	})
}

// HandleToggleLock handles POST /v1/moderation/threads/{threadID}/toggle-lock
//
//	@Summary		Toggle thread lock
//	@Description	Locks an unlocked thread or unlocks a locked one.
//	@Tags			Moderation
//	@Produce		json
//	@Param			threadID	path		string	true	"Thread ID"
//	@Success		200			{object}	forumsdk.LockToggleResponse
//	@Failure		403			{object}	forumsdk.ErrorResponse
//	@Failure		404			{object}	forumsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/moderation/threads/{threadID}/toggle-lock [post]
func (h *ModerationHandler) HandleToggleLock(w http.ResponseWriter, r *http.Request) {
	threadID, err := pathID(r, "threadID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.ModerationService.ToggleThreadLock(r.Context(), actorFrom(r), threadID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, forumsdk.LockToggleResponse{
		ThreadID: out.ThreadID,
		Locked:   out.Locked,
		Message:  out.Message(),
	})
}

// HandleListUsers handles GET /v1/moderation/users
//
//	@Summary		List users
//	@Tags			Moderation
//	@Produce		json
//	@Success		200	{object}	forumsdk.ListUsersResponse
//	@Failure		403	{object}	forumsdk.ErrorResponse	"Super role required"
//	@Security		BearerAuth
//	@Router			/v1/moderation/users [get]
func (h *ModerationHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.ModerationService.ListUsers(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := forumsdk.ListUsersResponse{Users: make([]forumsdk.UserResponse, len(users))}
	for i, u := range users {
		resp.Users[i] = toUser(u)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdateRole handles PUT /v1/moderation/users/{userID}/role
//
//	@Summary		Update a user's role
//	@Description	Sets the role of another user. Super users cannot remove their own super role. Requesting the current role changes nothing.
//	@Tags			Moderation
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		string						true	"User ID"
//	@Param			request	body		forumsdk.UpdateRoleRequest	true	"Role"
//	@Success		200		{object}	forumsdk.RoleChangeResponse
//	@Failure		400		{object}	forumsdk.ErrorResponse	"Unknown role"
//	@Failure		403		{object}	forumsdk.ErrorResponse	"Super role required or self demotion"
//	@Failure		404		{object}	forumsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/moderation/users/{userID}/role [put]
func (h *ModerationHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req forumsdk.UpdateRoleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	change, err := h.ModerationService.UpdateRole(r.Context(), actorFrom(r), userID, req.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, forumsdk.RoleChangeResponse{
		UserID:   change.UserID,
		Username: change.Username,
		Role:     change.Role.String(),
		Changed:  change.Changed,
		Message:  change.Message(),
	})
}
