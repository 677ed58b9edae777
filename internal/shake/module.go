package shake

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/j0lvera/eightball/internal/config"
)

// Params for creating a Debouncer
type Params struct {
	fx.In

	Config *config.Config
	Logger zerolog.Logger
}

// Result of creating a Debouncer
type Result struct {
	fx.Out

	Debouncer Debouncer
}

// New uses Redis when REDIS_URL is set and process memory otherwise
func New(lc fx.Lifecycle, p Params) (Result, error) {
	if p.Config.RedisURL == "" {
		return Result{Debouncer: NewMemoryDebouncer(p.Config.ShakeWindow)}, nil
	}

	opts, err := redis.ParseURL(p.Config.RedisURL)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("failed to connect to Redis: %w", err)
				}
				p.Logger.Info().Msg("shake debounce backed by redis")
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		},
	)

	return Result{Debouncer: NewRedisDebouncer(client, p.Config.ShakeWindow)}, nil
}

// Module provides the shake Debouncer
func Module() fx.Option {
	return fx.Module(
		"shake",
		fx.Provide(
			New,
		),
	)
}
