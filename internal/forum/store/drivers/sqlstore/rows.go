package sqlstore

import (
	"strings"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
)

type userRow struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	CreatedAt    int64  `db:"created_at"`
	UpdatedAt    int64  `db:"updated_at"`
}

type threadViewRow struct {
	ID             string `db:"id"`
	Title          string `db:"title"`
	Body           string `db:"body"`
	Category       string `db:"category"`
	Tags           string `db:"tags"`
	IsLocked       bool   `db:"is_locked"`
	CreatedAt      int64  `db:"created_at"`
	UpdatedAt      int64  `db:"updated_at"`
	AuthorID       string `db:"author_id"`
	AuthorUsername string `db:"author_username"`
	AuthorRole     string `db:"author_role"`
	PostCount      int64  `db:"post_count"`
	ReplyCount     int64  `db:"reply_count"`
	LatestPostAt   int64  `db:"latest_post_at"`
}

type postRow struct {
	ID             string `db:"id"`
	ThreadID       string `db:"thread_id"`
	AuthorID       string `db:"author_id"`
	Body           string `db:"body"`
	IsFlagged      bool   `db:"is_flagged"`
	ModerationNote string `db:"moderation_note"`
	CreatedAt      int64  `db:"created_at"`
	UpdatedAt      int64  `db:"updated_at"`
}

type postViewRow struct {
	postRow
	AuthorUsername string `db:"author_username"`
	AuthorRole     string `db:"author_role"`
}

type flaggedRow struct {
	postViewRow
	ThreadTitle    string `db:"thread_title"`
	ThreadIsLocked bool   `db:"thread_is_locked"`
}

func toNanos(t time.Time) int64 { return t.UnixNano() }

func fromNanos(n int64) time.Time { return time.Unix(0, n).UTC() }

// parseRole trusts the CHECK constraint on the role columns.
func parseRole(s string) domain.Role {
	role, _ := domain.ParseRole(s)
	return role
}

func joinTags(tags []string) string {
	return strings.Join(domain.NormalizeTags(tags), ",")
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return domain.ParseTags(s)
}

func mapUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		Role:         parseRole(row.Role),
		CreatedAt:    fromNanos(row.CreatedAt),
		UpdatedAt:    fromNanos(row.UpdatedAt),
	}
}

func mapUserSummary(row userRow) domain.UserSummary {
	return mapUser(row).Summary()
}

// mapThreadView derives LatestPostAt: threads without a reply report their
// own updated_at. A reply is any post other than the thread's seed, so a
// thread whose seed was removed still reports its newest reply.
func mapThreadView(row threadViewRow) domain.ThreadView {
	v := domain.ThreadView{
		ID:       row.ID,
		Title:    row.Title,
		Body:     row.Body,
		Category: row.Category,
		Tags:     splitTags(row.Tags),
		IsLocked: row.IsLocked,
		Author: domain.AuthorRef{
			ID:       row.AuthorID,
			Username: row.AuthorUsername,
			Role:     parseRole(row.AuthorRole),
		},
		PostCount: int(row.PostCount),
		CreatedAt: fromNanos(row.CreatedAt),
		UpdatedAt: fromNanos(row.UpdatedAt),
	}
	if row.ReplyCount == 0 {
		v.LatestPostAt = v.UpdatedAt
	} else {
		v.LatestPostAt = fromNanos(row.LatestPostAt)
	}
	return v
}

func mapPost(row postRow) domain.Post {
	return domain.Post{
		ID:             row.ID,
		ThreadID:       row.ThreadID,
		AuthorID:       row.AuthorID,
		Body:           row.Body,
		IsFlagged:      row.IsFlagged,
		ModerationNote: row.ModerationNote,
		CreatedAt:      fromNanos(row.CreatedAt),
		UpdatedAt:      fromNanos(row.UpdatedAt),
	}
}

func mapPostView(row postViewRow) domain.PostView {
	return domain.PostView{
		ID:       row.ID,
		ThreadID: row.ThreadID,
		Body:     row.Body,
		Author: domain.AuthorRef{
			ID:       row.AuthorID,
			Username: row.AuthorUsername,
			Role:     parseRole(row.AuthorRole),
		},
		IsFlagged:      row.IsFlagged,
		ModerationNote: row.ModerationNote,
		CreatedAt:      fromNanos(row.CreatedAt),
		UpdatedAt:      fromNanos(row.UpdatedAt),
	}
}

func mapFlagged(row flaggedRow) domain.FlaggedView {
	return domain.FlaggedView{
		ID:             row.ID,
		Body:           row.Body,
		ModerationNote: row.ModerationNote,
		Author: domain.AuthorRef{
			ID:       row.AuthorID,
			Username: row.AuthorUsername,
			Role:     parseRole(row.AuthorRole),
		},
		Thread: domain.ThreadRef{
			ID:       row.ThreadID,
			Title:    row.ThreadTitle,
			IsLocked: row.ThreadIsLocked,
		},
		CreatedAt: fromNanos(row.CreatedAt),
		UpdatedAt: fromNanos(row.UpdatedAt),
	}
}
