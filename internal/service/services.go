package service

import (
	"github.com/faithdive/faith-dive/internal/adapter"
	"github.com/faithdive/faith-dive/internal/config"
	"github.com/faithdive/faith-dive/internal/logger"
)

type Services struct {
	BibleService   BibleService
	AppInfoService AppInfoService
}

func NewServices(api adapter.BibleAPI, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		BibleService:   NewBibleService(api, logger),
		AppInfoService: appInfo,
	}, nil
}
