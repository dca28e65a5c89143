package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/Muthu784/Backend-Emotion/internal/api/handlers"
	appMiddleware "github.com/Muthu784/Backend-Emotion/internal/api/middlewares"
	"github.com/Muthu784/Backend-Emotion/internal/auth"
	"github.com/Muthu784/Backend-Emotion/internal/config"
	"github.com/Muthu784/Backend-Emotion/internal/core/ai"
	"github.com/Muthu784/Backend-Emotion/internal/services"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
	logger     zerolog.Logger
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, users *services.UserService, emotions *services.EmotionService, chat *services.ChatService, responder *ai.Responder, tokens *auth.TokenService, logger zerolog.Logger) *Server {
	authHandler := handlers.NewAuthHandler(users, tokens, logger)
	emotionHandler := handlers.NewEmotionHandler(emotions, logger)
	chatHandler := handlers.NewChatHandler(chat, logger)
	recommendationHandler := handlers.NewRecommendationHandler(responder, logger)
	authMW := appMiddleware.NewAuthMiddleware(tokens, users, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"status":"OK"}`))
	})

	r.Route("/auth", func(api chi.Router) {
		// public endpoints
		api.Post("/register", authHandler.Register)
		api.Post("/login", authHandler.Login)

		// protected endpoints
		api.Group(func(protected chi.Router) {
			protected.Use(authMW.Handler)
			protected.Get("/me", authHandler.Me)
			protected.Put("/update", authHandler.Update)
		})
	})

	r.Route("/emotions", func(api chi.Router) {
		api.Use(authMW.Handler)
		api.Post("/", emotionHandler.Add)
		api.Get("/history", emotionHandler.History)
		api.Post("/analyze", emotionHandler.Analyze)
		api.Delete("/{id}", emotionHandler.Delete)
	})

	r.Route("/chat", func(api chi.Router) {
		api.Use(authMW.Handler)
		api.Post("/send", chatHandler.Send)
		api.Get("/messages", chatHandler.Messages)
	})

	r.Get("/recommendations", recommendationHandler.Get)

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{httpServer: httpSrv, logger: logger}
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("HTTP server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
