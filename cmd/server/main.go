package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/utgstodio-dev/UTG-Stodio/internal/app"
	"github.com/utgstodio-dev/UTG-Stodio/internal/content"
	"github.com/utgstodio-dev/UTG-Stodio/internal/genai"
	"github.com/utgstodio-dev/UTG-Stodio/internal/handlers"
	"github.com/utgstodio-dev/UTG-Stodio/internal/moderation"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/analytics"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/auth"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/config"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/httpserver"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/logging"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/natsconn"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/run"
	"github.com/utgstodio-dev/UTG-Stodio/internal/search"
	"github.com/utgstodio-dev/UTG-Stodio/internal/session"
	"github.com/utgstodio-dev/UTG-Stodio/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// Analytics is optional: without NATS_URL every publish is a no-op.
	var events *analytics.Publisher
	if cfg.NATSURL != "" {
		nc, err := natsconn.Connect(natsconn.Options{URL: cfg.NATSURL})
		if err != nil {
			log.Error("connect nats", zap.Error(err))
			run.Exit(1)
		}
		defer nc.Close()
		var js nats.JetStreamContext
		if js, err = nc.JetStream(); err != nil {
			log.Error("init jetstream", zap.Error(err))
			run.Exit(1)
		}
		events = analytics.New(js, log)
	}

	collab := genai.New(genai.Options{
		APIKey:  cfg.GenAI.APIKey,
		BaseURL: cfg.GenAI.BaseURL,
		Model:   cfg.GenAI.Model,
		Timeout: cfg.GenAI.Timeout,
	})
	if cfg.GenAI.APIKey == "" {
		log.Warn("genai api key missing, semantic search and copyright checks disabled")
	}

	store := content.NewMemoryStore(content.Seed())
	views := app.NewRegistry()
	sess := session.NewManager(cfg.Session.JWTSecret, cfg.Session.TokenTTL, cfg.Session.LoginDelay, log)
	matcher := search.NewMatcher(collab, log)
	checker := moderation.NewChecker(collab, log)
	uploads := upload.NewManager(store, checker, events, log, upload.Options{
		TickInterval: cfg.Upload.TickInterval,
		OnComplete: func(req upload.Request, published content.Content) {
			views.Get(req.Owner.ID).SetTab(app.TabFor(published.Kind))
		},
	})

	r := chi.NewRouter()
	httpserver.SetupRouter(r)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("utg-stodio"))
	})

	r.Post("/v1/auth/login", handlers.Login(sess, events))

	verifier := auth.JWTVerifier{Secret: cfg.Session.JWTSecret}
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser(verifier))

		r.Post("/v1/auth/logout", handlers.Logout(views))

		r.Get("/v1/feed", handlers.Feed(store, views))
		r.Get("/v1/shorts", handlers.Shorts(store))

		r.Post("/v1/search", handlers.Search(matcher, store, views, events))
		r.Delete("/v1/search", handlers.ClearSearch(views))
		r.Post("/v1/tab", handlers.SetTab(views))

		r.Post("/v1/content/{content_id}/comments", handlers.CreateComment(store, sess, events))
		r.Post("/v1/content/{content_id}/like", handlers.ToggleLike(store, views))
		r.Post("/v1/users/{user_id}/follow", handlers.ToggleFollow(store, sess, views))

		r.Post("/v1/uploads", handlers.StartUpload(uploads, sess))
		r.Get("/v1/uploads/{upload_id}", handlers.GetUpload(uploads, views))

		r.Get("/v1/me", handlers.Me(sess, views))
		r.Get("/v1/me/dashboard", handlers.Dashboard(store, sess))
		r.Get("/v1/me/content", handlers.MyContent(store, sess))
	})

	srv := httpserver.New(httpserver.Options{Addr: cfg.HTTP.Addr, ServiceName: cfg.ServiceName, Logger: log, Router: r})

	runner := run.New(log)
	code := runner.WithSignals(func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			_ = srv.Shutdown(context.Background())
		}()
		return srv.Start(log)
	})

	log.Info("exit", zap.Int("code", code))
	run.Exit(code)
}
