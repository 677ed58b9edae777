package bot

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/j0lvera/eightball/internal/config"
	"github.com/j0lvera/eightball/internal/eightball"
	"github.com/j0lvera/eightball/internal/history"
)

const (
	// maxMessageRunes is Telegram's limit for a single text message.
	maxMessageRunes = 4096
	// maxLabelRunes bounds each question echoed by /history.
	maxLabelRunes = 200
)

// truncate shortens s to at most n runes, ending in an ellipsis when cut.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

// marker is the colour cue shown next to an answer.
func marker(s eightball.Sentiment) string {
	switch s {
	case eightball.Positive:
		return "🟢"
	case eightball.Neutral:
		return "🟡"
	case eightball.Negative:
		return "🔴"
	default:
		return "🎱"
	}
}

func formatAnswer(r eightball.Response) string {
	return marker(r.Sentiment) + " " + r.Text
}

func formatHistory(entries []history.Entry, empty string) string {
	if len(entries) == 0 {
		return empty
	}

	var b strings.Builder
	size := 0
	for i, e := range entries {
		block := fmt.Sprintf("%d. %s\n   %s  %s",
			i+1, truncate(e.Label(), maxLabelRunes), formatAnswer(e.Response), e.CreatedAt.Format("Jan 2 15:04"))
		if i > 0 {
			block = "\n" + block
		}

		n := utf8.RuneCountInString(block)
		if size+n > maxMessageRunes {
			break
		}
		b.WriteString(block)
		size += n
	}
	return b.String()
}

func shareText(e history.Entry, msgs config.Messages) string {
	if e.Shaken() {
		return truncate(fmt.Sprintf(msgs.ShareShaken, e.Response.Text), maxMessageRunes)
	}

	frame := utf8.RuneCountInString(fmt.Sprintf(msgs.ShareAsked, "", e.Response.Text))
	question := truncate(e.Question, maxMessageRunes-frame)
	return truncate(fmt.Sprintf(msgs.ShareAsked, question, e.Response.Text), maxMessageRunes)
}

// parseCommand splits "/cmd@botname rest" into "cmd", "botname" and "rest".
// Text that is not a command yields an empty command and the trimmed text.
func parseCommand(text string) (cmd, target, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", "", text
	}

	head, rest, _ := strings.Cut(text, " ")
	head, target, _ = strings.Cut(head[1:], "@")
	return strings.ToLower(head), target, strings.TrimSpace(rest)
}
