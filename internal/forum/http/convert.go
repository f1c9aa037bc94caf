package http

import (
	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/pkg/forumsdk"
)

func toAuthor(a domain.AuthorRef) forumsdk.AuthorResponse {
	return forumsdk.AuthorResponse{ID: a.ID, Username: a.Username, Role: a.Role.String()}
}

func toActor(a domain.Actor) forumsdk.ActorResponse {
	return forumsdk.ActorResponse{ID: a.ID, Username: a.Username, Role: a.Role.String()}
}

func toUser(u domain.UserSummary) forumsdk.UserResponse {
	return forumsdk.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toThread(v domain.ThreadView) forumsdk.ThreadResponse {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}
	return forumsdk.ThreadResponse{
		ID:           v.ID,
		Title:        v.Title,
		Body:         v.Body,
		Summary:      v.Summary(),
		Category:     v.Category,
		Tags:         tags,
		IsLocked:     v.IsLocked,
		Author:       toAuthor(v.Author),
		PostCount:    v.PostCount,
		LatestPostAt: v.LatestPostAt,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func toPost(p domain.PostView) forumsdk.PostResponse {
	return forumsdk.PostResponse{
		ID:             p.ID,
		ThreadID:       p.ThreadID,
		Body:           p.Body,
		Author:         toAuthor(p.Author),
		IsFlagged:      p.IsFlagged,
		ModerationNote: p.ModerationNote,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toFlagged(f domain.FlaggedView) forumsdk.FlaggedPostResponse {
	return forumsdk.FlaggedPostResponse{
		ID:             f.ID,
		Body:           f.Body,
		ModerationNote: f.ModerationNote,
		Author:         toAuthor(f.Author),
		Thread: forumsdk.ThreadRefResponse{
			ID:       f.Thread.ID,
			Title:    f.Thread.Title,
			IsLocked: f.Thread.IsLocked,
		},
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
