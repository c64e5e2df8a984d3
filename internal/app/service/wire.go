package service

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jose-valero/hoyolab-gist-stats/internal/adapters/gist"
	"github.com/jose-valero/hoyolab-gist-stats/internal/adapters/hoyolab"
	"github.com/jose-valero/hoyolab-gist-stats/internal/infra/config"
)

// NewDigestServiceFromConfig arma ambos clientes a partir de la config.
func NewDigestServiceFromConfig(cfg *config.Config, log *zap.Logger) *DigestService {
	hc := &http.Client{Timeout: cfg.HTTPTimeout}

	hoyo := hoyolab.New(&cfg.Account,
		hoyolab.WithHTTPClient(hc),
		hoyolab.WithBaseURL(cfg.PlatformBaseURL),
		hoyolab.WithLocale(cfg.Locale),
		hoyolab.WithLogger(log.Named("hoyolab")),
	)
	gh := gist.New(cfg.Publish.Token,
		gist.WithHTTPClient(hc),
		gist.WithBaseURL(cfg.PublishAPIURL),
		gist.WithLogger(log.Named("gist")),
	)
	return NewDigestService(hoyo, gh, cfg.Publish.DestID, log.Named("digest"))
}
