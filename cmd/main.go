package main

import (
	"context"
	"net/http"

	shopapp "github.com/muhammadheryan/rare-treasures/application/shop"
	treasureapp "github.com/muhammadheryan/rare-treasures/application/treasure"
	"github.com/muhammadheryan/rare-treasures/cmd/config"
	"github.com/muhammadheryan/rare-treasures/cmd/database"
	_ "github.com/muhammadheryan/rare-treasures/docs"
	connRepo "github.com/muhammadheryan/rare-treasures/repository/conn"
	shopRepo "github.com/muhammadheryan/rare-treasures/repository/shop"
	treasureRepo "github.com/muhammadheryan/rare-treasures/repository/treasure"
	"github.com/muhammadheryan/rare-treasures/transport"
	"github.com/muhammadheryan/rare-treasures/utils/logger"
	validatorx "github.com/muhammadheryan/rare-treasures/utils/validator"
	"go.uber.org/zap"
)

// @title CAT'S RARE TREASURES API
// @version 1.0
// @description Treasures and the shops that sell them
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := database.New(context.Background(), cfg)
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	ConnRepo := connRepo.NewConnRepository(db)
	TreasureRepo := treasureRepo.NewTreasureRepository()
	ShopRepo := shopRepo.NewShopRepository()

	// Initialize application layers
	TreasureApp := treasureapp.NewTreasureApp(ConnRepo, TreasureRepo)
	ShopApp := shopapp.NewShopApp(ConnRepo, ShopRepo)

	httpTransport := transport.NewTransport(TreasureApp, ShopApp)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
