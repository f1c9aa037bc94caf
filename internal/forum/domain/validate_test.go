package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	t.Parallel()

	name, err := domain.ValidateRegistration("  Alice ", "secret1")
	require.NoError(t, err)
	require.Equal(t, "alice", name)

	_, err = domain.ValidateRegistration(" ab ", "secret1")
	require.ErrorIs(t, err, domain.ErrUsernameTooShort)

	_, err = domain.ValidateRegistration("alice", "12345")
	require.ErrorIs(t, err, domain.ErrPasswordTooShort)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestThreadInputNormalize(t *testing.T) {
	t.Parallel()

	t.Run("defaults category and cleans tags", func(t *testing.T) {
		in, err := domain.ThreadInput{
			Title:    " Hello World ",
			Body:     "This is my first post here",
			Category: "   ",
			Tags:     []string{"intro", " intro", "a, b", ""},
		}.Normalize()
		require.NoError(t, err)
		require.Equal(t, "Hello World", in.Title)
		require.Equal(t, domain.DefaultCategory, in.Category)
		require.Equal(t, []string{"intro", "a", "b"}, in.Tags)
	})

	t.Run("rejects short title", func(t *testing.T) {
		_, err := domain.ThreadInput{Title: "Hey", Body: strings.Repeat("x", 20)}.Normalize()
		require.ErrorIs(t, err, domain.ErrTitleTooShort)
	})

	t.Run("rejects short body", func(t *testing.T) {
		_, err := domain.ThreadInput{Title: "Hello World", Body: "too short"}.Normalize()
		require.ErrorIs(t, err, domain.ErrThreadBodyShort)
	})
}

func TestParseTags(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"go", "sql"}, domain.ParseTags(" go, ,sql,go "))
	require.Empty(t, domain.ParseTags(""))
}

func TestNormalizePostBody(t *testing.T) {
	t.Parallel()

	body, err := domain.NormalizePostBody("  +1 ")
	require.NoError(t, err)
	require.Equal(t, "+1", body)

	_, err = domain.NormalizePostBody(" ok ")
	require.ErrorIs(t, err, domain.ErrPostBodyShort)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	short := strings.Repeat("a", 180)
	require.Equal(t, short, domain.Summarize(short))

	long := strings.Repeat("b", 181)
	got := domain.Summarize(long)
	require.Len(t, got, 180)
	require.True(t, strings.HasSuffix(got, "..."))
}

func TestGroupByCategory(t *testing.T) {
	t.Parallel()

	now := time.Now()
	views := []domain.ThreadView{
		{ID: "1", Category: "News", UpdatedAt: now},
		{ID: "2", Category: "General", UpdatedAt: now},
		{ID: "3", Category: "News", UpdatedAt: now},
	}

	groups := domain.GroupByCategory(views)
	require.Len(t, groups, 2)
	require.Equal(t, "News", groups[0].Name)
	require.Len(t, groups[0].Threads, 2)
	require.Equal(t, "3", groups[0].Threads[1].ID)
	require.Equal(t, "General", groups[1].Name)
}

func TestOutcomeMessages(t *testing.T) {
	t.Parallel()

	require.Equal(t, "alice is already a moderator",
		domain.RoleChange{Username: "alice", Role: domain.RoleModerator}.Message())
	require.Equal(t, "bob is now a super",
		domain.RoleChange{Username: "bob", Role: domain.RoleSuper, Changed: true}.Message())
	require.Equal(t, "Thread locked", domain.LockToggle{Locked: true}.Message())
	require.Equal(t, domain.ResolveRemove, domain.ParseResolveAction("REMOVE"))
	require.Equal(t, domain.ResolveApprove, domain.ParseResolveAction("whatever"))
}
