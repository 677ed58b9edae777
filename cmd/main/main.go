package main

import (
	"github.com/j0lvera/eightball/internal/bot"
	"github.com/j0lvera/eightball/internal/config"
	"github.com/j0lvera/eightball/internal/db"
	"github.com/j0lvera/eightball/internal/history"
	"github.com/j0lvera/eightball/internal/log"
	"github.com/j0lvera/eightball/internal/metrics"
	"github.com/j0lvera/eightball/internal/oracle"
	"github.com/j0lvera/eightball/internal/shake"
	"go.uber.org/fx"
)

func main() {

	fx.New(
		fx.WithLogger(log.NewEventLogger),
		config.Module(),
		log.Module(),
		db.Module(),
		history.Module(),
		shake.Module(),
		metrics.Module(),
		oracle.Module(),
		bot.Module(),
	).Run()
}
