package app

import (
	"log/slog"

	"github.com/trebuchet-org/mkt/internal/domain/config"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployContract   *usecase.DeployContract
	RunSuite         *usecase.RunSuite
	VerifyDeployment *usecase.VerifyDeployment
	ListDeployments  *usecase.ListDeployments
	ListNetworks     *usecase.ListNetworks
	ShowConfig       *usecase.ShowConfig
	ManageAnvil      *usecase.ManageAnvil

	// Shared sink so commands can report outside a use case
	Progress usecase.ProgressSink
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployContract *usecase.DeployContract,
	runSuite *usecase.RunSuite,
	verifyDeployment *usecase.VerifyDeployment,
	listDeployments *usecase.ListDeployments,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	manageAnvil *usecase.ManageAnvil,
	progress usecase.ProgressSink,
) (*App, error) {
	return &App{
		Config:           cfg,
		Log:              log,
		DeployContract:   deployContract,
		RunSuite:         runSuite,
		VerifyDeployment: verifyDeployment,
		ListDeployments:  listDeployments,
		ListNetworks:     listNetworks,
		ShowConfig:       showConfig,
		ManageAnvil:      manageAnvil,
		Progress:         progress,
	}, nil
}
