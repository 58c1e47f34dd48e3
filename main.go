package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hfenv/config"
	"hfenv/handler"
	"hfenv/logging"
	"hfenv/manager"
)

const version = "0.1.0"

func main() {
	config.ParseArgs()
	if config.CliArgs.Version {
		fmt.Println("hfenv " + version)
		return
	}

	if config.CliArgs.EnvFile != "" {
		if err := godotenv.Load(config.CliArgs.EnvFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load env file %s: %v\n", config.CliArgs.EnvFile, err)
			os.Exit(1)
		}
	} else {
		// Missing .env is fine; settings fall back to the process environment.
		_ = godotenv.Load()
	}

	settings, err := config.GetSettings(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if settings.Debug || config.CliArgs.Debug {
		level = logrus.DebugLevel
	}
	logging.InitLogger(level)
	log := logging.GetLogger()

	workers := manager.NewWorkerPool(settings.NumWorkers)
	httpHandler := handler.NewHTTPHandler(settings, workers)

	addr := fmt.Sprintf("%s:%d", settings.APIHost, settings.APIPort)
	server := &http.Server{
		Addr:    addr,
		Handler: httpHandler,
	}

	log.Infof("Starting server on %s (env: %s, workers: %d)", addr, settings.Env, workers.Size())
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
