package eightball

import "fmt"

// Sentiment is the tone of a Response. The set is closed.
type Sentiment int

const (
	Positive Sentiment = iota
	Neutral
	Negative
)

var sentiments = [...]Sentiment{Positive, Neutral, Negative}

// Sentiments lists every Sentiment in roll order.
func Sentiments() []Sentiment {
	out := make([]Sentiment, len(sentiments))
	copy(out, sentiments[:])
	return out
}

func (s Sentiment) String() string {
	switch s {
	case Positive:
		return "positive"
	case Neutral:
		return "neutral"
	case Negative:
		return "negative"
	default:
		return fmt.Sprintf("sentiment(%d)", int(s))
	}
}

// ParseSentiment converts the output of String back into a Sentiment.
func ParseSentiment(s string) (Sentiment, error) {
	switch s {
	case "positive":
		return Positive, nil
	case "neutral":
		return Neutral, nil
	case "negative":
		return Negative, nil
	default:
		return 0, fmt.Errorf("unknown sentiment %q", s)
	}
}
