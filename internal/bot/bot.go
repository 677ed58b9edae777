package bot

import (
	"context"
	"errors"
	"strings"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/j0lvera/eightball/internal/config"
	"github.com/j0lvera/eightball/internal/oracle"
)

const errorText = "Sorry, I encountered an error. Please try again."

var commands = []models.BotCommand{
	{Command: "ask", Description: "Ask the Magic 8-Ball a question"},
	{Command: "shake", Description: "Shake the ball for an answer"},
	{Command: "history", Description: "Show your recent answers"},
	{Command: "share", Description: "Get shareable text for your last answer"},
	{Command: "clear", Description: "Forget your history"},
	{Command: "help", Description: "How to use the ball"},
}

// sender is the part of *tbot.Bot the handler needs.
type sender interface {
	SendMessage(ctx context.Context, params *tbot.SendMessageParams) (*models.Message, error)
}

type Params struct {
	fx.In

	Config *config.Config
	Oracle *oracle.Service
}

type Result struct {
	fx.Out

	Bot *tbot.Bot
}

func New(lc fx.Lifecycle, p Params, log zerolog.Logger) (Result, error) {
	h := &handler{
		oracle: p.Oracle,
		msgs:   p.Config.Messages,
		log:    &log,
	}

	opts := []tbot.Option{
		tbot.WithDefaultHandler(
			func(ctx context.Context, tg *tbot.Bot, update *models.Update) {
				h.handle(ctx, tg, update)
			},
		),
	}

	tg, err := tbot.New(p.Config.Token, opts...)
	if err != nil {
		return Result{}, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(
		fx.Hook{
			OnStart: func(startCtx context.Context) error {
				log.Info().Msg("starting telegram bot...")
				me, err := tg.GetMe(startCtx)
				if err != nil {
					log.Warn().Err(err).Msg("unable to resolve bot username")
				} else {
					h.username = me.Username
				}
				if _, err := tg.SetMyCommands(startCtx, &tbot.SetMyCommandsParams{Commands: commands}); err != nil {
					log.Warn().Err(err).Msg("unable to register bot commands")
				}
				go tg.Start(ctx)
				return nil
			},
			OnStop: func(context.Context) error {
				log.Info().Msg("stopping telegram bot...")
				cancel()
				return nil
			},
		},
	)

	return Result{Bot: tg}, nil
}

func Module() fx.Option {
	return fx.Module(
		"bot",
		fx.Provide(
			New,
		),
		fx.Invoke(
			func(bot *tbot.Bot) {},
		),
	)
}

type handler struct {
	oracle   *oracle.Service
	msgs     config.Messages
	log      *zerolog.Logger
	username string // Set before polling starts
}

// addressedElsewhere reports whether a command names another bot.
func (h *handler) addressedElsewhere(target string) bool {
	return target != "" && h.username != "" && !strings.EqualFold(target, h.username)
}

func (h *handler) handle(ctx context.Context, tg sender, update *models.Update) {
	// Guard against non-message updates and media without text
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	chatID := update.Message.Chat.ID
	cmd, target, arg := parseCommand(update.Message.Text)
	if h.addressedElsewhere(target) {
		return
	}

	reply := func(text string) {
		if _, err := tg.SendMessage(ctx, &tbot.SendMessageParams{ChatID: chatID, Text: text}); err != nil {
			h.log.Error().Err(err).Int64("chat_id", chatID).Msg("unable to send message")
		}
	}

	switch cmd {
	case "start":
		reply(h.msgs.Welcome)

	case "help":
		reply(h.msgs.Help)

	case "shake":
		entry, err := h.oracle.Shake(ctx, chatID)
		if errors.Is(err, oracle.ErrShakeTooSoon) {
			reply(h.msgs.ShakeTooSoon)
			return
		}
		if err != nil {
			h.log.Error().Err(err).Int64("chat_id", chatID).Msg("unable to shake")
			reply(errorText)
			return
		}
		h.log.Info().Int64("chat_id", chatID).Str("source", "shake").
			Str("sentiment", entry.Response.Sentiment.String()).Msg("answer sent")
		reply(formatAnswer(entry.Response))

	case "history":
		entries, err := h.oracle.History(ctx, chatID)
		if err != nil {
			h.log.Error().Err(err).Int64("chat_id", chatID).Msg("unable to load history")
			reply(errorText)
			return
		}
		reply(formatHistory(entries, h.msgs.EmptyHistory))

	case "share":
		entry, ok, err := h.oracle.Latest(ctx, chatID)
		if err != nil {
			h.log.Error().Err(err).Int64("chat_id", chatID).Msg("unable to load latest entry")
			reply(errorText)
			return
		}
		if !ok {
			reply(h.msgs.EmptyHistory)
			return
		}
		reply(shareText(entry, h.msgs))

	case "clear":
		if err := h.oracle.Clear(ctx, chatID); err != nil {
			h.log.Error().Err(err).Int64("chat_id", chatID).Msg("unable to clear history")
			reply(errorText)
			return
		}
		reply(h.msgs.Cleared)

	case "ask", "":
		// Plain text is a question too
		entry := h.oracle.Ask(ctx, chatID, arg)
		h.log.Info().Int64("chat_id", chatID).Str("source", "ask").
			Str("sentiment", entry.Response.Sentiment.String()).Msg("answer sent")
		reply(formatAnswer(entry.Response))

	default:
		reply(h.msgs.Help)
	}
}
