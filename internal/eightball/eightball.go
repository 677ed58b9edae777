// Package eightball picks Magic 8-Ball answers.
//
// A question is split into lowercase word tokens and matched against three
// keyword dictionaries. Every sentiment group starts with the same weight and
// each matching token adds KeywordBoost to its group. The roll first selects a
// group by weight and then a response uniformly within the group, so the
// uneven 10/5/5 catalog split does not skew how strongly keywords pull.
package eightball

import (
	"regexp"
	"strings"
)

const (
	// BaseWeight is the starting weight of every sentiment group.
	BaseWeight = 1.0
	// KeywordBoost is added to a group's weight for each matching token.
	KeywordBoost = 2.0
)

var nonWord = regexp.MustCompile(`\W+`)

// Ball selects responses from the fixed catalog.
type Ball struct {
	src Source
}

// Option configures a Ball.
type Option func(*Ball)

// WithSource sets the random source. A nil source keeps the default.
func WithSource(src Source) Option {
	return func(b *Ball) {
		if src != nil {
			b.src = src
		}
	}
}

// New creates a Ball drawing from the process-wide generator unless a Source
// is supplied.
func New(opts ...Option) *Ball {
	b := &Ball{src: globalSource{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Weights holds the keyword hits and resulting group weights for a question.
type Weights struct {
	PositiveHits  int
	NegativeHits  int
	UncertainHits int

	Positive float64
	Neutral  float64
	Negative float64
}

// Total is the sum of the three group weights.
func (w Weights) Total() float64 {
	return w.Positive + w.Neutral + w.Negative
}

// Of returns the weight of one group.
func (w Weights) Of(s Sentiment) float64 {
	switch s {
	case Positive:
		return w.Positive
	case Neutral:
		return w.Neutral
	case Negative:
		return w.Negative
	default:
		return 0
	}
}

// Probability is the chance that a roll lands in group s.
func (w Weights) Probability(s Sentiment) float64 {
	return w.Of(s) / w.Total()
}

// pick maps a roll in [0, Total) to a group.
func (w Weights) pick(roll float64) Sentiment {
	switch {
	case roll < w.Positive:
		return Positive
	case roll < w.Positive+w.Neutral:
		return Neutral
	default:
		return Negative
	}
}

// Tokenize lowercases question and returns its distinct word tokens.
func Tokenize(question string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, t := range nonWord.Split(strings.ToLower(question), -1) {
		if t != "" {
			tokens[t] = struct{}{}
		}
	}
	return tokens
}

// Weigh scores question against the keyword dictionaries.
func Weigh(question string) Weights {
	var w Weights
	for t := range Tokenize(question) {
		if _, ok := positiveKeywords[t]; ok {
			w.PositiveHits++
		}
		if _, ok := negativeKeywords[t]; ok {
			w.NegativeHits++
		}
		if _, ok := uncertainKeywords[t]; ok {
			w.UncertainHits++
		}
	}
	w.Positive = BaseWeight + float64(w.PositiveHits)*KeywordBoost
	w.Neutral = BaseWeight + float64(w.UncertainHits)*KeywordBoost
	w.Negative = BaseWeight + float64(w.NegativeHits)*KeywordBoost
	return w
}

// Ask returns a response weighted toward the sentiment of question. Any string
// is accepted; a blank one gives each group an equal chance.
func (b *Ball) Ask(question string) Response {
	r, _ := b.AskWeighed(question)
	return r
}

// AskWeighed is Ask that also returns the weights behind the roll.
func (b *Ball) AskWeighed(question string) (Response, Weights) {
	w := Weigh(question)
	group := byGroup[w.pick(b.src.Float64()*w.Total())]
	return group[b.src.IntN(len(group))], w
}

// Shake returns a response chosen uniformly from the whole catalog.
func (b *Ball) Shake() Response {
	return catalog[b.src.IntN(len(catalog))]
}
