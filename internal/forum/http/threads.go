package http

import (
	"net/http"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/service"
	"github.com/aussiebroadwan/forumhub/pkg/forumsdk"
	"github.com/aussiebroadwan/forumhub/pkg/httpx"
)

type ThreadsHandler struct {
	ThreadService *service.ThreadService
}

// HandleList handles GET /v1/threads
//
//	@Summary		List threads
//	@Description	Returns every thread grouped by category, most recently active first.
//	@Tags			Threads
//	@Produce		json
//	@Success		200	{object}	forumsdk.ListThreadsResponse
//	@Failure		503	{object}	forumsdk.ErrorResponse
//	@Router			/v1/threads [get]
func (h *ThreadsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	groups, err := h.ThreadService.ListByCategory(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := forumsdk.ListThreadsResponse{Categories: make([]forumsdk.CategoryResponse, len(groups))}
	for i, g := range groups {
		threads := make([]forumsdk.ThreadResponse, len(g.Threads))
		for j, v := range g.Threads {
			threads[j] = toThread(v)
		}
		resp.Categories[i] = forumsdk.CategoryResponse{Name: g.Name, Threads: threads}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate handles POST /v1/threads
//
//	@Summary		Create thread
//	@Description	Creates a thread and its opening post. Blank categories default to General; tags may be a list or comma separated text.
//	@Tags			Threads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		forumsdk.CreateThreadRequest	true	"Thread"
//	@Success		201		{object}	forumsdk.ThreadResponse
//	@Failure		400		{object}	forumsdk.ErrorResponse
//	@Failure		401		{object}	forumsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/threads [post]
func (h *ThreadsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req forumsdk.CreateThreadRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	v, err := h.ThreadService.CreateThread(r.Context(), actorFrom(r), domain.ThreadInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toThread(v))
}

// HandleGet handles GET /v1/threads/{threadID}
//
//	@Summary		Get thread
//	@Description	Returns a thread with its posts, oldest first.
//	@Tags			Threads
//	@Produce		json
//	@Param			threadID	path		string	true	"Thread ID"
//	@Success		200			{object}	forumsdk.ThreadDetailResponse
//	@Failure		400			{object}	forumsdk.ErrorResponse	"Malformed id"
//	@Failure		404			{object}	forumsdk.ErrorResponse
//	@Router			/v1/threads/{threadID} [get]
func (h *ThreadsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "threadID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	detail, err := h.ThreadService.GetThread(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := forumsdk.ThreadDetailResponse{
		Thread: toThread(detail.Thread),
		Posts:  make([]forumsdk.PostResponse, len(detail.Posts)),
	}
	for i, p := range detail.Posts {
		resp.Posts[i] = toPost(p)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
