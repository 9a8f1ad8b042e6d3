//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"media2text/internal/app/converter"
	"media2text/internal/app/repository"
	"media2text/internal/app/service"
	"media2text/web"
)

var serviceSet = wire.NewSet(
	provideLogger,
	provideAPIKeys,
	provideProvidersConfig,
	provideProvider,
	provideHistoryDAO,
	providePreparer,
	provideDownloader,
	provideDownloadDir,
	provideService,
)

// InitializeService builds a single-job transcription service for the
// named provider. An empty name selects the configured default.
func InitializeService(name ProviderName, verbose Verbose) (*service.Service, error) {
	wire.Build(serviceSet)
	return nil, nil
}

// InitializeConverter builds the batch directory converter.
func InitializeConverter(name ProviderName, verbose Verbose) (*converter.Converter, error) {
	wire.Build(serviceSet, converter.NewConverter)
	return nil, nil
}

// InitializeServer builds the HTTP server.
func InitializeServer(addr ListenAddr, name ProviderName, verbose Verbose) (*web.Server, error) {
	wire.Build(serviceSet, provideServer)
	return nil, nil
}

// InitializeHistory builds just the history store, for commands that
// never touch a provider.
func InitializeHistory() (repository.HistoryDAO, error) {
	wire.Build(provideProvidersConfig, provideHistoryDAO)
	return nil, nil
}
