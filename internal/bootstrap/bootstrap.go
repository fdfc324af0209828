// Package bootstrap wires configuration to a loaded vocabulary table.
package bootstrap

import (
	"fmt"
	"time"

	"ltranslate/internal/config"
	"ltranslate/internal/domain"
	"ltranslate/internal/repository"
	"ltranslate/internal/repository/postgres"
	"ltranslate/internal/repository/spreadsheet"
	"ltranslate/internal/vocabulary"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	dbMaxRetries = 5
	dbRetryDelay = 2 * time.Second
)

// LoadVocabulary opens the configured source and loads the table.
// Every failure, connection problems included, is a *domain.DataSourceError.
func LoadVocabulary(cfg *config.Config, fs afero.Fs, logger *zap.Logger) (*vocabulary.Table, error) {
	repo, closeRepo, err := openRepository(cfg, fs, logger)
	if err != nil {
		return nil, err
	}
	defer closeRepo()

	table, err := vocabulary.Load(repo)
	if err != nil {
		return nil, err
	}

	logger.Info("Vocabulary loaded",
		zap.String("source", repo.Source()),
		zap.Int("rows", table.RowCount()),
	)
	return table, nil
}

func openRepository(cfg *config.Config, fs afero.Fs, logger *zap.Logger) (repository.VocabularyRepository, func(), error) {
	switch cfg.Vocabulary.Source {
	case config.SourceFile:
		return spreadsheet.NewVocabularyRepo(fs, cfg.Vocabulary.File, cfg.Vocabulary.Sheet), func() {}, nil

	case config.SourcePostgres:
		source := fmt.Sprintf("postgres %s:%s/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

		db, err := postgres.Connect(cfg.DSN(), dbMaxRetries, dbRetryDelay, logger)
		if err != nil {
			return nil, nil, &domain.DataSourceError{Source: source, Err: err}
		}
		if err := postgres.Migrate(db, postgres.MigrationsURL, logger); err != nil {
			db.Close()
			return nil, nil, &domain.DataSourceError{Source: source, Err: err}
		}
		return postgres.NewVocabularyRepo(db), func() { db.Close() }, nil
	}

	return nil, nil, &domain.DataSourceError{
		Source: cfg.Vocabulary.Source,
		Err:    fmt.Errorf("unsupported vocabulary source"),
	}
}
