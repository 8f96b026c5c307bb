//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/mkt/internal/adapters"
	"github.com/trebuchet-org/mkt/internal/config"
	"github.com/trebuchet-org/mkt/internal/logging"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		config.ProvideNetworkResolver,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewRunSuite,
		usecase.NewVerifyDeployment,
		usecase.NewListDeployments,
		usecase.NewListNetworks,
		usecase.NewShowConfig,
		usecase.NewManageAnvil,

		// App
		NewApp,
	)
	return nil, nil
}
