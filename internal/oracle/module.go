package oracle

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/j0lvera/eightball/internal/config"
	"github.com/j0lvera/eightball/internal/eightball"
	"github.com/j0lvera/eightball/internal/history"
	"github.com/j0lvera/eightball/internal/metrics"
	"github.com/j0lvera/eightball/internal/shake"
)

// Params for creating the oracle Service
type Params struct {
	fx.In

	Config    *config.Config
	Store     history.Store
	Debouncer shake.Debouncer
	Metrics   *metrics.Metrics
	Logger    zerolog.Logger
}

// NewBall builds the selector, seeded when RANDOM_SEED is set.
func NewBall(cfg *config.Config) *eightball.Ball {
	if cfg.RandomSeed != 0 {
		return eightball.New(eightball.WithSource(eightball.NewSeededSource(cfg.RandomSeed)))
	}
	return eightball.New()
}

// New creates the oracle Service
func New(p Params) *Service {
	return NewService(
		NewBall(p.Config),
		p.Store,
		p.Debouncer,
		p.Metrics,
		p.Config.HistoryLimit,
		&p.Logger,
	)
}

// Module provides the oracle Service
func Module() fx.Option {
	return fx.Module(
		"oracle",
		fx.Provide(
			New,
		),
	)
}
