// Package seed fills a forum database with fake users, threads, posts and
// flags for local development and demos. Everything is written through the
// services so seeded data obeys the same rules as real traffic.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/service"
	"github.com/aussiebroadwan/forumhub/internal/forum/store"
	"github.com/aussiebroadwan/forumhub/pkg/cryptox"
	"github.com/brianvoe/gofakeit/v6"
)

// DefaultPassword is shared by every seeded account.
const DefaultPassword = "password123"

var categories = []string{domain.DefaultCategory, "Announcements", "Help", "Off Topic", "Show and Tell"}

type Options struct {
	Users          int
	Moderators     int
	Threads        int
	PostsPerThread int
	// FlagRatio is the share of replies that get flagged, from 0 to 1.
	FlagRatio float64
	// LockRatio is the share of threads a moderator locks after seeding.
	LockRatio float64
	AdminName string
	Password  string
	// Seed makes runs reproducible. Zero picks a time based seed.
	Seed int64
}

func (o Options) withDefaults() Options {
	o.Users = max(o.Users, 0)
	o.Moderators = max(o.Moderators, 0)
	o.Threads = max(o.Threads, 0)
	o.PostsPerThread = max(o.PostsPerThread, 0)
	if o.AdminName == "" {
		o.AdminName = "admin"
	}
	if o.Password == "" {
		o.Password = DefaultPassword
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Report counts what a run created.
type Report struct {
	Users   int
	Threads int
	Posts   int
	Flags   int
	Locked  int
}

type Seeder struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
	Logger *slog.Logger

	faker      *gofakeit.Faker
	users      *service.UserService
	threads    *service.ThreadService
	posts      *service.PostService
	moderation *service.ModerationService
}

func New(st store.Store, hasher *cryptox.PasswordHasher, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		Store:      st,
		Hasher:     hasher,
		Logger:     logger,
		users:      &service.UserService{Store: st, Hasher: hasher},
		threads:    &service.ThreadService{Store: st},
		posts:      &service.PostService{Store: st},
		moderation: &service.ModerationService{Store: st},
	}
}

// Run seeds the database. The admin account is created or reused and
// promoted to super; everyone else registers as a member and some are then
// promoted to moderator by the admin.
func (s *Seeder) Run(ctx context.Context, opts Options) (Report, error) {
	opts = opts.withDefaults()
	s.faker = gofakeit.New(opts.Seed)

	var report Report

	admin, err := s.ensureAdmin(ctx, opts)
	if err != nil {
		return report, err
	}

	members, err := s.seedUsers(ctx, opts, &report)
	if err != nil {
		return report, err
	}

	moderators := make([]domain.Actor, 0, opts.Moderators)
	for i := 0; i < opts.Moderators && i < len(members); i++ {
		change, err := s.moderation.UpdateRole(ctx, admin, members[i].ID, domain.RoleModerator.String())
		if err != nil {
			return report, fmt.Errorf("promote %s: %w", members[i].Username, err)
		}
		members[i].Role = change.Role
		moderators = append(moderators, members[i])
	}

	authors := append([]domain.Actor{admin}, members...)
	threadIDs := make([]string, 0, opts.Threads)
	for range opts.Threads {
		author := authors[s.faker.Number(0, len(authors)-1)]
		thread, err := s.threads.CreateThread(ctx, author, s.threadInput())
		if err != nil {
			return report, fmt.Errorf("create thread: %w", err)
		}
		threadIDs = append(threadIDs, thread.ID)
		report.Threads++

		for range opts.PostsPerThread {
			poster := authors[s.faker.Number(0, len(authors)-1)]
			post, err := s.posts.CreatePost(ctx, poster, thread.ID, s.faker.Paragraph(1, 2, 12, " "))
			if err != nil {
				return report, fmt.Errorf("create post: %w", err)
			}
			report.Posts++

			if s.faker.Float64Range(0, 1) >= opts.FlagRatio {
				continue
			}
			flagger := authors[s.faker.Number(0, len(authors)-1)]
			if _, err := s.posts.FlagPost(ctx, flagger, thread.ID, post.ID); err != nil {
				return report, fmt.Errorf("flag post: %w", err)
			}
			report.Flags++
		}
	}

	locker := admin
	if len(moderators) > 0 {
		locker = moderators[0]
	}
	for _, id := range threadIDs {
		if s.faker.Float64Range(0, 1) >= opts.LockRatio {
			continue
		}
		if _, err := s.moderation.ToggleThreadLock(ctx, locker, id); err != nil {
			return report, fmt.Errorf("lock thread: %w", err)
		}
		report.Locked++
	}

	s.Logger.InfoContext(ctx, "seed complete",
		"users", report.Users,
		"threads", report.Threads,
		"posts", report.Posts,
		"flags", report.Flags,
		"locked", report.Locked,
	)
	return report, nil
}

func (s *Seeder) ensureAdmin(ctx context.Context, opts Options) (domain.Actor, error) {
	if _, err := s.users.Register(ctx, opts.AdminName, opts.Password); err != nil && !errors.Is(err, domain.ErrUsernameTaken) {
		return domain.Actor{}, fmt.Errorf("register admin: %w", err)
	}

	admin, err := s.Store.Users().GetUserByUsername(ctx, opts.AdminName)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("load admin: %w", err)
	}
	if admin.Role != domain.RoleSuper {
		// No super exists yet to grant the role through the workflow.
		if _, err := s.Store.Users().UpdateRole(ctx, admin.ID, domain.RoleSuper, time.Now().UTC()); err != nil {
			return domain.Actor{}, fmt.Errorf("promote admin: %w", err)
		}
		admin.Role = domain.RoleSuper
	}
	return admin.Actor(), nil
}

func (s *Seeder) seedUsers(ctx context.Context, opts Options, report *Report) ([]domain.Actor, error) {
	members := make([]domain.Actor, 0, opts.Users)
	for attempts := 0; len(members) < opts.Users && attempts < opts.Users*5; attempts++ {
		name := s.username()
		u, err := s.users.Register(ctx, name, opts.Password)
		if errors.Is(err, domain.ErrUsernameTaken) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
		members = append(members, domain.Actor{ID: u.ID, Username: u.Username, Role: u.Role})
		report.Users++
	}
	return members, nil
}

func (s *Seeder) username() string {
	name := strings.ToLower(s.faker.Username())
	if len(name) < domain.MinUsernameLength {
		name += s.faker.DigitN(3)
	}
	return name
}

func (s *Seeder) threadInput() domain.ThreadInput {
	tags := make([]string, s.faker.Number(0, 3))
	for i := range tags {
		tags[i] = s.faker.Word()
	}
	return domain.ThreadInput{
		Title:    strings.TrimSuffix(s.faker.Sentence(s.faker.Number(3, 8)), "."),
		Body:     s.faker.Paragraph(1, 3, 15, "\n\n"),
		Category: s.faker.RandomString(categories),
		Tags:     tags,
	}
}
