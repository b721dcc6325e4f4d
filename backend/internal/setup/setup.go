package setup

import (
	"context"

	"github.com/itchan-dev/anonboard/backend/internal/handler"
	"github.com/itchan-dev/anonboard/backend/internal/service"
	"github.com/itchan-dev/anonboard/backend/internal/storage/pg"
	"github.com/itchan-dev/anonboard/backend/internal/utils"
	"github.com/itchan-dev/anonboard/shared/config"
	"github.com/itchan-dev/anonboard/shared/middleware/metrics"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Metrics *metrics.Metrics
	Config  *config.Config
}

// SetupDependencies connects to postgres, applies the schema and wires the board service.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := storage.Migrate(ctx); err != nil {
		storage.Cleanup()
		return nil, err
	}

	return Wire(storage, cfg), nil
}

// Wire builds the service graph on top of an already opened storage.
func Wire(storage *pg.Storage, cfg *config.Config) *Dependencies {
	m := metrics.New()
	board := service.NewBoard(storage, &utils.BoardValidator{}, utils.NewBcryptHasher(), cfg.Public)
	h := handler.New(board, storage, m)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Metrics: m,
		Config:  cfg,
	}
}
