package service

import (
	"context"

	"github.com/jose-valero/hoyolab-gist-stats/internal/domain"
)

// Lo implementa internal/adapters/hoyolab.Client
type RecordFetcher interface {
	GetGameRecordCard(ctx context.Context) ([]domain.GameRecord, error)
}

// Lo implementa internal/adapters/gist.Client
type SnippetPublisher interface {
	UpdateFile(ctx context.Context, gistID, description, filename, content string) error
}
