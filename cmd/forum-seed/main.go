// Command forum-seed populates a forum database with fake data for local
// development. It reads the same configuration as the forum service.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/aussiebroadwan/forumhub/internal/forum/app"
	"github.com/aussiebroadwan/forumhub/internal/forum/seed"
	"github.com/aussiebroadwan/forumhub/pkg/cryptox"
	"github.com/aussiebroadwan/forumhub/pkg/slogx"
)

func main() {
	users := flag.Int("users", 20, "Number of member accounts to create")
	moderators := flag.Int("moderators", 2, "Number of members promoted to moderator")
	threads := flag.Int("threads", 30, "Number of threads to create")
	posts := flag.Int("posts", 5, "Replies per thread")
	flagRatio := flag.Float64("flag-ratio", 0.1, "Share of replies to flag (0-1)")
	lockRatio := flag.Float64("lock-ratio", 0.05, "Share of threads to lock (0-1)")
	admin := flag.String("admin", "admin", "Username of the super user to create or reuse")
	password := flag.String("password", seed.DefaultPassword, "Password for every seeded account")
	seedValue := flag.Int64("seed", 0, "Random seed; 0 picks one from the clock")
	flag.Parse()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := slogx.New(slogx.Config{
		Service: "forum-seed",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	ctx := context.Background()

	db, err := app.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	pepper, err := cryptox.LoadOrCreatePepper(cfg.PepperFile)
	if err != nil {
		log.Fatalf("failed to load pepper: %v", err)
	}
	hasher, err := cryptox.NewPasswordHasher(pepper)
	if err != nil {
		log.Fatalf("failed to initialize password hasher: %v", err)
	}

	report, err := seed.New(db, hasher, logger).Run(ctx, seed.Options{
		Users:          *users,
		Moderators:     *moderators,
		Threads:        *threads,
		PostsPerThread: *posts,
		FlagRatio:      *flagRatio,
		LockRatio:      *lockRatio,
		AdminName:      *admin,
		Password:       *password,
		Seed:           *seedValue,
	})
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Printf("seeded %d users, %d threads, %d posts, %d flags, %d locked threads",
		report.Users, report.Threads, report.Posts, report.Flags, report.Locked)
	log.Printf("all seeded accounts use the password %q", *password)
}
