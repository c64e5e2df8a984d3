package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jose-valero/hoyolab-gist-stats/internal/app/service"
	"github.com/jose-valero/hoyolab-gist-stats/internal/infra/config"
	"github.com/jose-valero/hoyolab-gist-stats/internal/infra/logger"
)

// handler corre una vez por evento programado (EventBridge schedule).
func handler(ctx context.Context) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		return "", err
	}
	defer func() { _ = lg.Sync() }()

	out := service.NewDigestServiceFromConfig(cfg, lg).Run(ctx)
	if cfg.StrictExit && out != service.OutcomePublished {
		return out.String(), fmt.Errorf("digest run: %s", out)
	}
	return out.String(), nil
}

func main() { lambda.Start(handler) }
