package config

import (
	"log"
	"os"
)

type Config struct {
	Port         string
	DBDSN        string
	MediaDir     string
	LogFile      string
	DefaultStore string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		// catalog is transient by design; reseeded on every start
		dsn = ":memory:"
	}
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./shopweaver.log"
	}
	defStore := os.Getenv("DEFAULT_STORE")
	if defStore == "" {
		defStore = "st-volt"
	}

	cfg := Config{Port: port, DBDSN: dsn, MediaDir: media, LogFile: logFile, DefaultStore: defStore}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s DEFAULT_STORE=%s",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile, cfg.DefaultStore)
	return cfg
}
