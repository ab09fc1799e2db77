// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/angelamos/portfolio-api/internal/auth"
	"github.com/angelamos/portfolio-api/internal/blog"
	"github.com/angelamos/portfolio-api/internal/config"
	"github.com/angelamos/portfolio-api/internal/contact"
	"github.com/angelamos/portfolio-api/internal/core"
	"github.com/angelamos/portfolio-api/internal/project"
	"github.com/angelamos/portfolio-api/internal/skill"
	"github.com/angelamos/portfolio-api/internal/user"
)

const (
	adminEmail = "admin@portfolio.com"
	adminName  = "Admin User"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

// run seeds through the services so password hashing, slugs, and read
// times go through the same code paths as the API.
func run(configPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // process exits right after

	tokenIssuer, err := auth.NewTokenIssuer(cfg.JWT)
	if err != nil {
		return err
	}

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	authSvc := auth.NewService(tokenIssuer, userSvc)

	projectSvc := project.NewService(project.NewRepository(db.DB))
	blogSvc := blog.NewService(blog.NewRepository(db.DB))
	skillSvc := skill.NewService(skill.NewRepository(db.DB))
	contactSvc := contact.NewService(contact.NewRepository(db.DB))

	adminID, err := seedAdmin(ctx, authSvc, userSvc)
	if err != nil {
		return err
	}

	if err := seedSkills(ctx, skillSvc); err != nil {
		return err
	}

	if err := seedProjects(ctx, projectSvc); err != nil {
		return err
	}

	if err := seedPosts(ctx, blogSvc, adminID); err != nil {
		return err
	}

	if err := seedContact(ctx, contactSvc); err != nil {
		return err
	}

	slog.Info("seed completed")
	return nil
}

func seedAdmin(
	ctx context.Context,
	authSvc *auth.Service,
	userSvc *user.Service,
) (string, error) {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		return "", fmt.Errorf("SEED_ADMIN_PASSWORD is required")
	}

	resp, err := authSvc.Register(ctx, auth.RegisterRequest{
		Name:     adminName,
		Email:    adminEmail,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			slog.Info("admin user already exists", "email", adminEmail)

			existing, getErr := userSvc.GetByEmail(ctx, adminEmail)
			if getErr != nil {
				return "", getErr
			}
			return existing.ID, nil
		}
		return "", err
	}

	if _, err := userSvc.UpdateUserRole(ctx, resp.User.ID, user.RoleAdmin); err != nil {
		return "", err
	}

	slog.Info("admin user created", "email", adminEmail)
	return resp.User.ID, nil
}

func seedSkills(ctx context.Context, svc *skill.Service) error {
	skills := []skill.CreateSkillRequest{
		{Name: "React", Category: skill.CategoryFrontend, Level: 90},
		{Name: "TypeScript", Category: skill.CategoryFrontend, Level: 85},
		{Name: "Tailwind CSS", Category: skill.CategoryFrontend, Level: 88},
		{Name: "Go", Category: skill.CategoryBackend, Level: 92},
		{Name: "Node.js", Category: skill.CategoryBackend, Level: 85},
		{Name: "PostgreSQL", Category: skill.CategoryDatabase, Level: 85},
		{Name: "Redis", Category: skill.CategoryDatabase, Level: 80},
		{Name: "Docker", Category: skill.CategoryDevops, Level: 82},
		{Name: "Git", Category: skill.CategoryTools, Level: 92},
		{Name: "Figma", Category: skill.CategoryDesign, Level: 70},
	}

	created := 0
	for _, req := range skills {
		if _, err := svc.Create(ctx, req); err != nil {
			if errors.Is(err, skill.ErrSkillExists) ||
				errors.Is(err, core.ErrDuplicateKey) {
				continue
			}
			return err
		}
		created++
	}

	slog.Info("skills seeded", "created", created, "total", len(skills))
	return nil
}

func seedProjects(ctx context.Context, svc *project.Service) error {
	featured := true

	projects := []project.CreateProjectRequest{
		{
			Title:        "E-Commerce Platform",
			Description:  "A full-stack e-commerce platform with user authentication, payment integration, and an admin dashboard.",
			Technologies: []string{"React", "Go", "PostgreSQL", "Redis", "Stripe API"},
			Category:     project.CategoryFullstack,
			GithubLink:   ptr("https://github.com/angelamos/ecommerce-platform"),
			LiveLink:     ptr("https://ecommerce-demo.example.com"),
			Status:       ptr(project.StatusCompleted),
			IsFeatured:   &featured,
		},
		{
			Title:        "Task Management App",
			Description:  "A collaborative task management application with real-time updates and kanban boards.",
			Technologies: []string{"React", "WebSockets", "Go", "PostgreSQL"},
			Category:     project.CategoryWeb,
			GithubLink:   ptr("https://github.com/angelamos/task-management"),
			Status:       ptr(project.StatusCompleted),
			IsFeatured:   &featured,
		},
		{
			Title:        "Weather Dashboard",
			Description:  "A responsive weather dashboard with location-based forecasts and interactive maps.",
			Technologies: []string{"React", "OpenWeatherMap API", "Chart.js"},
			Category:     project.CategoryFrontend,
			GithubLink:   ptr("https://github.com/angelamos/weather-dashboard"),
			Status:       ptr(project.StatusDeployed),
		},
	}

	created := 0
	for _, req := range projects {
		if _, err := svc.Create(ctx, req); err != nil {
			if errors.Is(err, core.ErrDuplicateKey) {
				continue
			}
			return err
		}
		created++
	}

	slog.Info("projects seeded", "created", created, "total", len(projects))
	return nil
}

func seedPosts(ctx context.Context, svc *blog.Service, authorID string) error {
	published := true

	posts := []blog.CreatePostRequest{
		{
			Title:       "Building a Portfolio Backend in Go",
			Content:     "A walkthrough of the decisions behind this API: chi for routing, sqlx over pgx for storage, argon2id for password hashing, and a stateless token scheme with per-request user re-validation. The post covers why each piece was chosen and what the trade-offs were in practice.",
			Excerpt:     "Design notes from building this portfolio backend in Go.",
			Category:    blog.CategoryProgramming,
			Tags:        []string{"go", "backend", "api"},
			IsPublished: &published,
		},
		{
			Title:       "Rate Limiting With Redis GCRA",
			Content:     "Redis-backed GCRA gives smooth rate limiting without the thundering-herd edges of fixed windows. This post shows how to wire redis_rate into chi middleware, how to pick sensible per-role budgets, and how to fail open with a local limiter when Redis is unavailable.",
			Excerpt:     "Smooth request throttling with redis_rate and a local fallback.",
			Category:    blog.CategoryTutorial,
			Tags:        []string{"redis", "rate-limiting", "go"},
			IsPublished: &published,
		},
	}

	created := 0
	for _, req := range posts {
		if _, err := svc.Create(ctx, authorID, req); err != nil {
			if errors.Is(err, core.ErrDuplicateKey) {
				continue
			}
			return err
		}
		created++
	}

	slog.Info("blog posts seeded", "created", created, "total", len(posts))
	return nil
}

func seedContact(ctx context.Context, svc *contact.Service) error {
	_, err := svc.Submit(ctx, contact.SubmitMessageRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Freelance inquiry",
		Message: "Hi! I came across your portfolio and would love to talk about a contract project.",
	}, "", "seed-script")
	if err != nil {
		return err
	}

	slog.Info("sample contact message seeded")
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
