package main

import (
	"log"
	"net/http"

	"wifiqr/internal/api"
	"wifiqr/internal/config"
	"wifiqr/internal/files"
	"wifiqr/internal/render"
	"wifiqr/internal/utils"
)

func main() {
	cfg := config.Load()

	logger, err := utils.NewLogger(cfg.LogPath)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Close()

	level, err := render.ParseECLevel(cfg.DefaultLevel)
	if err != nil {
		log.Fatalf("invalid default level %q: %v", cfg.DefaultLevel, err)
	}

	store := files.NewStore(cfg.StorePath)
	srv := api.NewServer(store, render.QRRenderer{}, logger, render.Options{
		Level: level,
		Size:  cfg.DefaultSize,
	})

	logger.Info("server running on %s", cfg.ListenAddr)
	log.Println("Server running on " + cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, srv.Router()))
}
