package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/tcwang/elemental-cards/internal/api"
	"github.com/tcwang/elemental-cards/internal/collection"
	"github.com/tcwang/elemental-cards/internal/constants"
	"github.com/tcwang/elemental-cards/internal/duel"
	"github.com/tcwang/elemental-cards/internal/logging"
	"github.com/tcwang/elemental-cards/internal/storage"
)

func main() {
	// Configuration file path may be provided via CARDS_CONFIG or
	// defaults to ./cards_config.json. The file itself is optional;
	// without it the built-in advantage table and round cap apply.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath)
	storage.SeedCards(repo, cfg.SeedCards)

	cards := collection.NewService(repo)
	duels := duel.NewService(cards, repo, cfg.Table, cfg.RoundCap)
	handler := api.NewHandler(cards, duels, cfg.Table)

	router := gin.Default()
	handler.Register(router)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr: addr,
		"round_cap":            cfg.RoundCap,
		"elements":             len(cfg.Table.Entries()),
	})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
