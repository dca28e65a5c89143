package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Muthu784/Backend-Emotion/internal/auth"
	"github.com/Muthu784/Backend-Emotion/internal/config"
	"github.com/Muthu784/Backend-Emotion/internal/core/ai"
	db "github.com/Muthu784/Backend-Emotion/internal/core/database"
	"github.com/Muthu784/Backend-Emotion/internal/logging"
	"github.com/Muthu784/Backend-Emotion/internal/services"
)

// App owns every long-lived dependency. Everything is constructed here
// and passed down explicitly; there is no package-level mutable state.
type App struct {
	DBClient db.DbClient
	LLM      *ai.GeminiLLM
	Server   *Server
	Logger   zerolog.Logger
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.New("emotichat-api")

	appCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	dbClient, err := db.NewDatabaseClient(appCtx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info().Msg("database initialized and ready")

	// The Gemini client is created once at startup. Without an API key
	// the detector and responder run on their local fallback paths.
	var (
		gemini *ai.GeminiLLM
		llm    ai.Generator
	)
	if cfg.AIAPIKey != "" {
		gemini, err = ai.NewGeminiLLM(appCtx, cfg.AIAPIKey, cfg.GenModel)
		if err != nil {
			_ = dbClient.Close()
			return nil, err
		}
		llm = gemini
		logger.Info().Str("model", cfg.GenModel).Msg("AI provider initialized")
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set; running on local fallback paths only")
	}

	detector := ai.NewDetector(llm, cfg.AITimeout, logger)
	responder := ai.NewResponder(llm, cfg.AITimeout, logger)

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	users := services.NewUserService(dbClient, cfg.BcryptCost, logger)
	emotions := services.NewEmotionService(dbClient, detector, logger)
	chat := services.NewChatService(dbClient, detector, responder, logger)

	server := NewServer(cfg, users, emotions, chat, responder, tokens, logger)

	return &App{DBClient: dbClient, LLM: gemini, Server: server, Logger: logger}, nil
}

func (a *App) Close() {
	if a.LLM != nil {
		_ = a.LLM.Close()
	}
	if a.DBClient != nil {
		_ = a.DBClient.Close()
	}
}
