package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isaacaji/portfolio/internal/config"
	"github.com/isaacaji/portfolio/internal/handler"
	"github.com/isaacaji/portfolio/internal/logging"
	"github.com/isaacaji/portfolio/internal/mailer"
	"github.com/isaacaji/portfolio/internal/repository"
	"github.com/isaacaji/portfolio/internal/service"
	"github.com/isaacaji/portfolio/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	// Content sources: PostgreSQL when configured, otherwise the built-in
	// seed data. A content directory overrides the seed blog posts.
	var (
		db          repository.DB
		projectRepo repository.ProjectRepository = repository.NewSeedProjectRepository()
		postRepo    repository.BlogPostRepository = repository.NewSeedBlogPostRepository()
		contactRepo repository.ContactRepository  = repository.NewMemoryContactRepository(0)
	)
	switch {
	case cfg.DatabaseURL != "":
		pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()
		db = pool
		projectRepo = repository.NewPgProjectRepository(pool)
		postRepo = repository.NewPgBlogPostRepository(pool)
		contactRepo = repository.NewPgContactRepository(pool)
		slog.Info("using postgres content")
	case cfg.ContentDir != "":
		postRepo = repository.NewMarkdownBlogPostRepository(os.DirFS(cfg.ContentDir))
		slog.Info("using markdown blog posts", "dir", cfg.ContentDir)
	default:
		slog.Info("using built-in seed content")
	}

	var m mailer.Mailer
	if cfg.SMTP.Host != "" {
		smtpMailer, err := mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			Timeout:  cfg.SMTP.Timeout,
		})
		if err != nil {
			logging.Fatal("failed to configure smtp", "error", err)
		}
		m = smtpMailer
		slog.Info("sending contact mail via smtp", "host", cfg.SMTP.Host)
	} else {
		m = mailer.NewLogMailer(cfg.MailDelay)
		slog.Info("contact mail is logged, not sent")
	}

	projectService := service.NewProjectService(projectRepo)
	blogService := service.NewBlogService(postRepo)
	contactService := service.NewContactService(m, cfg.ContactRecipient, contactRepo)

	h := handler.New(db, cfg.FrontendURL)
	pages := handler.NewPageHandler(projectService, blogService, contactService, cfg.SendTimeout)
	projectHandler := handler.NewProjectHandler(projectService)
	blogHandler := handler.NewBlogHandler(blogService)
	contactHandler := handler.NewContactHandler(contactService, cfg.SendTimeout)

	limiter := handler.NewRateLimiter(cfg.ContactRatePerMinute)
	defer limiter.Stop()

	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", pages.Home)
	mux.HandleFunc("GET /about", pages.About)
	mux.HandleFunc("GET /projects", pages.Projects)
	mux.HandleFunc("GET /blog", pages.Blog)
	mux.HandleFunc("GET /blog/{slug}", pages.Post)
	mux.HandleFunc("GET /contact", pages.ContactForm)
	mux.Handle("POST /contact", limiter.MiddlewareWith(http.HandlerFunc(pages.ContactSubmit), pages.ContactRateLimited))
	mux.Handle("GET "+view.StaticPrefix, view.StaticHandler())
	mux.HandleFunc("/", pages.NotFound)

	// JSON API
	api := http.NewServeMux()
	api.HandleFunc("GET /api/health", h.Health)
	api.HandleFunc("GET /api/projects", projectHandler.List)
	api.HandleFunc("GET /api/blog", blogHandler.List)
	api.HandleFunc("GET /api/blog/{slug}", blogHandler.Get)
	api.Handle("POST /api/contact", limiter.Middleware(http.HandlerFunc(contactHandler.Submit)))
	mux.Handle("/api/", h.CORS(api))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.SendTimeout + 10*time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
