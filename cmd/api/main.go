package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"zoxnova/internal/config"
	"zoxnova/internal/db"
	apihttp "zoxnova/internal/http"
	"zoxnova/internal/llm"
	"zoxnova/internal/service"
	"zoxnova/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	client, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	docStore := store.NewMongoStore(client.Database(cfg.DatabaseName))

	// El proveedor se elige una sola vez en el arranque: sin credencial
	// configurada el servicio responde con el proveedor demo.
	var provider llm.Provider
	if cfg.DemoMode() {
		logger.Warn("no provider api key configured, running in demo mode")
		provider = llm.NewDemoProvider(cfg.LLMModel)
	} else {
		provider = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	}

	learnifySvc := service.NewLearnifyService(provider)
	quizifySvc := service.NewQuizifyService(provider)

	healthHandler := apihttp.NewHealthHandler(cfg.ServiceName)
	aiHandler := apihttp.NewAIHandler(logger, provider)
	chatHandler := apihttp.NewChatHandler(logger, docStore)
	studyHandler := apihttp.NewStudyHandler(logger, learnifySvc, quizifySvc)
	router := apihttp.NewRouter(logger, healthHandler, aiHandler, chatHandler, studyHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
