package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/jose-valero/hoyolab-gist-stats/internal/app/service"
	"github.com/jose-valero/hoyolab-gist-stats/internal/infra/config"
	"github.com/jose-valero/hoyolab-gist-stats/internal/infra/logger"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	svc := service.NewDigestServiceFromConfig(cfg, lg)
	out := svc.Run(context.Background())
	lg.Info("run finished: " + out.String())

	// por defecto nunca salimos con error; STRICT_EXIT es para schedulers
	if cfg.StrictExit && out.ExitCode() != 0 {
		_ = lg.Sync()
		os.Exit(out.ExitCode())
	}
}
