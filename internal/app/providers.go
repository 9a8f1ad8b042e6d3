// Package app assembles the application graph. The provide* functions
// are consumed by the wire injectors in wire.go.
package app

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"media2text/internal/app/api/provider"
	"media2text/internal/app/pipeline"
	"media2text/internal/app/repository"
	"media2text/internal/app/repository/pg"
	"media2text/internal/app/repository/sqlite"
	"media2text/internal/app/service"
	"media2text/internal/app/util/files"
	"media2text/internal/config"
	"media2text/internal/downloader"
	"media2text/internal/logging"
	"media2text/web"
)

// Named types keep the wire graph unambiguous.
type (
	ProviderName string
	ListenAddr   string
	Verbose      bool
	DownloadDir  string
)

func provideLogger(verbose Verbose) *zap.SugaredLogger {
	return logging.NewSugared(bool(verbose))
}

func provideAPIKeys() (*config.APIKeys, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}
	return config.GetAPIKeys()
}

func provideProvidersConfig() (*config.ProvidersConfig, error) {
	dataDir, err := files.DataDir()
	if err != nil {
		return nil, err
	}
	return config.LoadProvidersConfig(filepath.Join(dataDir, "providers.yaml"))
}

func provideProvider(name ProviderName, keys *config.APIKeys, cfg *config.ProvidersConfig) (provider.Provider, error) {
	providerName := string(name)
	if providerName == "" {
		providerName = cfg.DefaultProvider
	}
	if err := keys.RequireKey(providerName); err != nil {
		return nil, err
	}

	overrides := cfg.For(providerName)
	return provider.New(providerName, provider.Config{
		APIKey:  keys.KeyFor(providerName),
		Model:   overrides.Model,
		BaseURL: overrides.BaseURL,
		Timeout: overrides.Timeout(),
	})
}

func provideHistoryDAO(cfg *config.ProvidersConfig) (repository.HistoryDAO, error) {
	switch cfg.History.Backend {
	case "", "sqlite":
		dataDir, err := files.DataDir()
		if err != nil {
			return nil, err
		}
		return sqlite.NewHistoryDB(filepath.Join(dataDir, "history.db"))
	case "postgres":
		return pg.NewHistoryDB(cfg.History.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.History.Backend)
	}
}

func providePreparer(log *zap.SugaredLogger) *pipeline.Preparer {
	return pipeline.NewPreparer(log)
}

func provideDownloader(log *zap.SugaredLogger) *downloader.Downloader {
	return downloader.New(log)
}

func provideDownloadDir() (DownloadDir, error) {
	dataDir, err := files.DataDir()
	if err != nil {
		return "", err
	}
	return DownloadDir(filepath.Join(dataDir, "downloads")), nil
}

func provideService(p provider.Provider, preparer *pipeline.Preparer, history repository.HistoryDAO,
	dl *downloader.Downloader, dir DownloadDir, log *zap.SugaredLogger) *service.Service {
	return service.New(p, preparer, history, dl, string(dir), log)
}

func provideServer(addr ListenAddr, svc *service.Service, history repository.HistoryDAO,
	keys *config.APIKeys, log *zap.SugaredLogger) *web.Server {
	return web.NewServer(string(addr), svc, history, keys.Available(), log)
}
