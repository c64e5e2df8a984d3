package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New arma un logger de consola (zap development config) con el nivel pedido.
// La consola es el único canal de observabilidad del proceso.
func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stdout"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
