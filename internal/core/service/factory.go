package service

import (
	"readerscout/internal/adapters/readwise"
	"readerscout/internal/config"
	"readerscout/internal/core/domain/ports"

	"github.com/rs/zerolog"
)

func CreateDocumentSource(cfg *config.Config, log zerolog.Logger) ports.DocumentSource {
	return readwise.NewClient(cfg.AuthURL, cfg.ListURL, cfg.APIKey, cfg.HTTPTimeout, log)
}
