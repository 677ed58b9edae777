package history

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/j0lvera/eightball/internal/config"
	"github.com/j0lvera/eightball/internal/db"
)

// ErrUnknownBackend is returned for an unsupported HISTORY_BACKEND.
var ErrUnknownBackend = errors.New("unknown history backend")

// Params for creating a history Store
type Params struct {
	fx.In

	Config   *config.Config
	DBClient *db.Client `optional:"true"`
	Logger   zerolog.Logger
}

// Result of creating a history Store
type Result struct {
	fx.Out

	Store Store
}

// New selects the Store implementation named by the configuration
func New(p Params) (Result, error) {
	switch p.Config.HistoryBackend {
	case config.BackendMemory:
		p.Logger.Info().Int("max_entries", p.Config.HistoryCap).Msg("keeping history in memory")
		return Result{Store: NewMemoryStore(p.Config.HistoryCap)}, nil
	case config.BackendPostgres:
		if p.DBClient == nil {
			return Result{}, errors.New("postgres history backend requires a database client")
		}
		p.Logger.Info().Msg("keeping history in postgres")
		return Result{Store: NewPostgresStore(p.DBClient)}, nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownBackend, p.Config.HistoryBackend)
	}
}

// Module provides the history Store
func Module() fx.Option {
	return fx.Module(
		"history",
		fx.Provide(
			New,
		),
	)
}
