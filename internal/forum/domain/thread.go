package domain

import "time"

type Thread struct {
	ID         string
	Title      string
	Body       string
	Category   string
	AuthorID   string
	Tags       []string
	IsLocked   bool
	SeedPostID string // opening post, written in the same transaction
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ThreadView is the read model for listings and detail pages. PostCount and
// LatestPostAt are derived when the view is read.
type ThreadView struct {
	ID           string
	Title        string
	Body         string
	Category     string
	Tags         []string
	IsLocked     bool
	Author       AuthorRef
	PostCount    int
	LatestPostAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary returns the body shortened for listings.
func (v ThreadView) Summary() string {
	return Summarize(v.Body)
}

// ThreadRef is the parent thread projection inlined into flagged posts.
type ThreadRef struct {
	ID       string
	Title    string
	IsLocked bool
}

// ThreadDetail is a thread together with its posts, oldest first.
type ThreadDetail struct {
	Thread ThreadView
	Posts  []PostView
}

// CategoryGroup holds the threads of one category in activity order.
type CategoryGroup struct {
	Name    string
	Threads []ThreadView
}

// GroupByCategory buckets views by category, keeping categories in the
// order their first thread appears.
func GroupByCategory(views []ThreadView) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[string]int)
	for _, v := range views {
		i, ok := index[v.Category]
		if !ok {
			i = len(groups)
			index[v.Category] = i
			groups = append(groups, CategoryGroup{Name: v.Category})
		}
		groups[i].Threads = append(groups[i].Threads, v)
	}
	return groups
}
