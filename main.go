package main

import (
	"os"

	"conecta/config"
	"conecta/controllers"
	dbpkg "conecta/db"
	"conecta/logger"
	"conecta/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env é opcional; env já exportada tem precedência.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.json"
	}
	cfg := config.Get(cfgPath)

	logFormat := "json"
	if cfg.Debug {
		logFormat = "console"
	}
	logger.Setup(logger.Config{Level: cfg.LogLevel, Format: logFormat})
	log := logger.L()

	dbpkg.SetConfigurations(cfg)
	database, err := dbpkg.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("não foi possível conectar no banco")
	}
	defer database.Close()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	controllers.Configure(cfg)

	r := gin.New()
	r.Use(dbpkg.Middleware(database))
	router.Initialize(r, cfg)

	log.Info().Str("port", cfg.ApiPort).Msg("servidor no ar")
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		log.Fatal().Err(err).Msg("servidor encerrou com erro")
	}
}
