package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jose-valero/hoyolab-gist-stats/internal/domain"
)

// Descripción y nombre de archivo fijos del gist.
const (
	DigestDescription = "🎮 HoYoverse gameplay stats"
	DigestFilename    = "🎮 HoYoverse gameplay stats"
)

// Outcome resume cómo terminó una corrida. Ningún camino es un error para el caller.
type Outcome int

const (
	OutcomePublished Outcome = iota
	OutcomeNoData
	OutcomePublishFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomePublished:
		return "published"
	case OutcomeNoData:
		return "no data"
	case OutcomePublishFailed:
		return "publish failed"
	}
	return "unknown"
}

// ExitCode solo se usa con STRICT_EXIT; por defecto el proceso siempre sale con 0.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeNoData:
		return 2
	case OutcomePublishFailed:
		return 3
	}
	return 0
}

type DigestService struct {
	fetcher   RecordFetcher
	publisher SnippetPublisher
	gistID    string
	log       *zap.Logger
}

func NewDigestService(fc RecordFetcher, pub SnippetPublisher, gistID string, log *zap.Logger) *DigestService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DigestService{fetcher: fc, publisher: pub, gistID: gistID, log: log}
}

// Run: fetch y, solo si hay records, publish.
func (s *DigestService) Run(ctx context.Context) Outcome {
	records := s.Fetch(ctx)
	if len(records) == 0 {
		s.log.Error("failed to retrieve data from HoYoLab")
		return OutcomeNoData
	}
	return s.Publish(ctx, records)
}

// Fetch devuelve nil ante cualquier error; el error queda logueado.
func (s *DigestService) Fetch(ctx context.Context) []domain.GameRecord {
	records, err := s.fetcher.GetGameRecordCard(ctx)
	if err != nil {
		s.log.Error("hoyolab fetch", zap.Error(err))
		return nil
	}
	s.log.Info("hoyolab fetch ok", zap.Int("games", len(records)))
	return records
}

// Publish sobreescribe el archivo del gist con el digest. Best effort: un
// fallo se loguea y se informa en el Outcome, nunca se propaga.
func (s *DigestService) Publish(ctx context.Context, records []domain.GameRecord) Outcome {
	if len(records) == 0 {
		s.log.Error("no data to update gist")
		return OutcomeNoData
	}

	for _, r := range records {
		s.log.Debug("formatting stats", zap.Int("game_id", r.GameID), zap.String("game", r.Name), zap.Int("stats", len(r.Stats)))
	}
	digest := BuildDigest(records)

	if err := s.publisher.UpdateFile(ctx, s.gistID, DigestDescription, DigestFilename, digest); err != nil {
		s.log.Error("error updating gist", zap.String("gist_id", s.gistID), zap.Error(err))
		return OutcomePublishFailed
	}
	s.log.Info("gist updated successfully", zap.String("gist_id", s.gistID))
	return OutcomePublished
}
