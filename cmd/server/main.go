package main

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/accesslens/accesslens/internal/api"
	"github.com/accesslens/accesslens/internal/config"
	"github.com/accesslens/accesslens/internal/logger"
	"github.com/accesslens/accesslens/internal/persona"
	"github.com/accesslens/accesslens/internal/scenario"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet.
		panic(err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	store, err := persona.Load(cfg.Paths.Personas)
	if err != nil {
		log.WithError(err).Error("failed to load persona store", map[string]interface{}{
			"path": cfg.Paths.Personas,
		})
		os.Exit(1)
	}
	log.Info("persona store loaded", map[string]interface{}{
		"path":  cfg.Paths.Personas,
		"count": store.Len(),
	})

	// The UI keeps serving without the key; only the generation path fails.
	if os.Getenv(config.APIKeyEnv) == "" {
		log.Warn("model credential not set; generation requests will fail until it is exported", map[string]interface{}{
			"variable": config.APIKeyEnv,
		})
	}

	engine := scenario.NewEngine(cfg, log)
	handler := api.NewHandler(store, engine, log)

	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogging(log))
	handler.Register(router)

	indexPage := filepath.Join(cfg.Paths.WebDir, "index.html")
	if _, err := os.Stat(indexPage); err == nil {
		router.StaticFile("/", indexPage)
	} else {
		log.Warn("web page not found; serving API only", map[string]interface{}{
			"path": indexPage,
		})
	}

	log.Info("accesslens server starting", map[string]interface{}{
		"port":  cfg.Server.Port,
		"model": cfg.Model.Name,
	})
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.WithError(err).Error("server failed", nil)
		os.Exit(1)
	}
}
