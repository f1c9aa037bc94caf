package http

import (
	"net/http"

	"github.com/aussiebroadwan/forumhub/internal/forum/service"
	"github.com/aussiebroadwan/forumhub/pkg/forumsdk"
	"github.com/aussiebroadwan/forumhub/pkg/httpx"
)

type PostsHandler struct {
	PostService *service.PostService
}

// HandleCreate handles POST /v1/threads/{threadID}/posts
//
//	@Summary		Reply to a thread
//	@Description	Adds a post to an unlocked thread. Locked threads refuse replies from every role.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			threadID	path		string						true	"Thread ID"
//	@Param			request		body		forumsdk.CreatePostRequest	true	"Post"
//	@Success		201			{object}	forumsdk.PostResponse
//	@Failure		400			{object}	forumsdk.ErrorResponse	"Short body, locked or missing thread"
//	@Failure		401			{object}	forumsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/threads/{threadID}/posts [post]
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	threadID, err := pathID(r, "threadID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req forumsdk.CreatePostRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.PostService.CreatePost(r.Context(), actorFrom(r), threadID, req.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPost(p))
}

// HandleFlag handles POST /v1/threads/{threadID}/posts/{postID}/flag
//
//	@Summary		Flag a post
//	@Description	Queues a post for moderator review. Flagging an already flagged post succeeds.
//	@Tags			Posts
//	@Produce		json
//	@Param			threadID	path		string	true	"Thread ID"
//	@Param			postID		path		string	true	"Post ID"
//	@Success		200			{object}	forumsdk.FlagResponse
//	@Failure		401			{object}	forumsdk.ErrorResponse
//	@Failure		404			{object}	forumsdk.ErrorResponse	"Post missing or not in this thread"
//	@Security		BearerAuth
//	@Router			/v1/threads/{threadID}/posts/{postID}/flag [post]
func (h *PostsHandler) HandleFlag(w http.ResponseWriter, r *http.Request) {
	threadID, err := pathID(r, "threadID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.PostService.FlagPost(r.Context(), actorFrom(r), threadID, postID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, forumsdk.FlagResponse{
		PostID:   out.PostID,
		ThreadID: out.ThreadID,
		Message:  out.Message(),
	})
}
