package eightball

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *Ball {
	return New(WithSource(rand.New(rand.NewPCG(seed, seed+1))))
}

// fixedSource replays preset values.
type fixedSource struct {
	float float64
	index int
}

func (f fixedSource) Float64() float64 { return f.float }
func (f fixedSource) IntN(n int) int   { return f.index % n }

func countSentiments(n int, fn func() Response) map[Sentiment]int {
	counts := make(map[Sentiment]int)
	for i := 0; i < n; i++ {
		counts[fn().Sentiment]++
	}
	return counts
}

func TestCatalog(t *testing.T) {
	all := Responses()
	require.Len(t, all, 20)

	counts := make(map[Sentiment]int)
	for _, r := range all {
		assert.NotEmpty(t, strings.TrimSpace(r.Text))
		counts[r.Sentiment]++
	}
	assert.Equal(t, 10, counts[Positive])
	assert.Equal(t, 5, counts[Neutral])
	assert.Equal(t, 5, counts[Negative])

	assert.Len(t, ResponsesFor(Positive), 10)
	assert.Len(t, ResponsesFor(Neutral), 5)
	assert.Len(t, ResponsesFor(Negative), 5)
}

func TestResponsesReturnsCopy(t *testing.T) {
	all := Responses()
	all[0] = Response{Text: "changed", Sentiment: Negative}
	assert.Equal(t, "It is certain", Responses()[0].Text)
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("Very doubtful")
	require.True(t, ok)
	assert.Equal(t, Negative, r.Sentiment)

	_, ok = Lookup("Perhaps")
	assert.False(t, ok)
}

func TestKeywordSets(t *testing.T) {
	sets := map[string][]string{
		"positive":  PositiveKeywords(),
		"negative":  NegativeKeywords(),
		"uncertain": UncertainKeywords(),
	}

	owner := make(map[string]string)
	for name, words := range sets {
		require.NotEmpty(t, words, name)
		for _, w := range words {
			assert.Equal(t, strings.ToLower(strings.TrimSpace(w)), w, "keyword %q in %s", w, name)
			if prev, dup := owner[w]; dup {
				t.Errorf("keyword %q appears in both %s and %s", w, prev, name)
			}
			owner[w] = name
		}
	}
}

func TestSentimentString(t *testing.T) {
	tests := []struct {
		sentiment Sentiment
		expected  string
	}{
		{Positive, "positive"},
		{Neutral, "neutral"},
		{Negative, "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sentiment.String())
			got, err := ParseSentiment(tt.expected)
			require.NoError(t, err)
			assert.Equal(t, tt.sentiment, got)
		})
	}

	_, err := ParseSentiment("meh")
	assert.Error(t, err)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		question string
		expected []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t\n", nil},
		{"punctuation only", "?!...", nil},
		{"mixed case", "Will I WIN?", []string{"will", "i", "win"}},
		{"duplicates collapse", "love, love LOVE", []string{"love"}},
		{"apostrophe splits", "don't", []string{"don", "t"}},
		{"underscore is a word char", "snake_case", []string{"snake_case"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.question)
			assert.Len(t, got, len(tt.expected))
			for _, w := range tt.expected {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestWeigh(t *testing.T) {
	tests := []struct {
		name      string
		question  string
		positive  int
		negative  int
		uncertain int
	}{
		{"blank", "", 0, 0, 0},
		{"no keywords", "What will happen?", 0, 0, 0},
		{"morphological variant", "Will I be successful?", 1, 0, 0},
		{"variant and stem are distinct", "success successful", 2, 0, 0},
		{"repeated keyword counts once", "love love love", 1, 0, 0},
		{"negative variants", "I am worried about failure", 0, 2, 0},
		{"uncertain variants", "I am doubtful and confused", 0, 0, 2},
		{"mixed", "Maybe I will win or lose", 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Weigh(tt.question)
			assert.Equal(t, tt.positive, w.PositiveHits)
			assert.Equal(t, tt.negative, w.NegativeHits)
			assert.Equal(t, tt.uncertain, w.UncertainHits)
			assert.Equal(t, BaseWeight+float64(tt.positive)*KeywordBoost, w.Positive)
			assert.Equal(t, BaseWeight+float64(tt.uncertain)*KeywordBoost, w.Neutral)
			assert.Equal(t, BaseWeight+float64(tt.negative)*KeywordBoost, w.Negative)
		})
	}
}

func TestWeightsProbability(t *testing.T) {
	blank := Weigh("")
	for _, s := range Sentiments() {
		assert.InDelta(t, 1.0/3.0, blank.Probability(s), 1e-12)
	}

	// 1 + 3*2 = 7 out of 9 regardless of group population.
	pos := Weigh("love happy good")
	neg := Weigh("fail bad wrong")
	assert.InDelta(t, 7.0/9.0, pos.Probability(Positive), 1e-12)
	assert.InDelta(t, 7.0/9.0, neg.Probability(Negative), 1e-12)
}

func TestWeightsOutOfRangeSentiment(t *testing.T) {
	w := Weigh("fail bad wrong")
	assert.Zero(t, w.Of(Sentiment(7)))
	assert.Zero(t, w.Probability(Sentiment(7)))
	assert.Equal(t, w.Negative, w.Of(Negative))
}

func TestSentimentsReturnsCopy(t *testing.T) {
	all := Sentiments()
	require.Equal(t, []Sentiment{Positive, Neutral, Negative}, all)

	all[0] = Negative
	assert.Equal(t, Positive, Sentiments()[0])
	assert.Len(t, ResponsesFor(Positive), 10)
}

func TestAskWeighed(t *testing.T) {
	b := New(WithSource(fixedSource{float: 0.1, index: 2}))
	q := "Will I be successful? Maybe."

	r, w := b.AskWeighed(q)
	assert.Equal(t, Weigh(q), w)
	assert.Equal(t, 1, w.PositiveHits)
	assert.Equal(t, 1, w.UncertainHits)
	// 0.1 * 7 = 0.7 lands in the positive band [0, 3).
	assert.Equal(t, ResponsesFor(Positive)[2], r)

	same := New(WithSource(fixedSource{float: 0.1, index: 2}))
	assert.Equal(t, r, same.Ask(q))
}

func TestAskRollBoundaries(t *testing.T) {
	// Blank question: weights 1/1/1, total 3.
	tests := []struct {
		name     string
		float    float64
		expected Sentiment
	}{
		{"start of positive", 0, Positive},
		{"end of positive", 0.333, Positive},
		{"start of neutral", 0.34, Neutral},
		{"end of neutral", 0.666, Neutral},
		{"start of negative", 0.67, Negative},
		{"end of negative", 0.999999, Negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithSource(fixedSource{float: tt.float}))
			got := b.Ask("")
			assert.Equal(t, tt.expected, got.Sentiment)
			assert.Equal(t, ResponsesFor(tt.expected)[0], got)
		})
	}
}

func TestAskPicksWithinGroup(t *testing.T) {
	b := New(WithSource(fixedSource{float: 0.9, index: 3}))
	assert.Equal(t, ResponsesFor(Negative)[3], b.Ask("anything"))
}

func TestShakeIndex(t *testing.T) {
	all := Responses()
	for i := range all {
		b := New(WithSource(fixedSource{index: i}))
		assert.Equal(t, all[i], b.Shake())
	}
}

func TestAskAlwaysReturnsCatalogMember(t *testing.T) {
	b := seeded(1)
	questions := []string{
		"", " ", "Will I be successful?", "fail bad wrong",
		"¿Qué pasará?", "🎱🎱🎱", strings.Repeat("maybe ", 1000),
	}
	for _, q := range questions {
		for i := 0; i < 50; i++ {
			_, ok := Lookup(b.Ask(q).Text)
			require.True(t, ok, "question %q", q)
		}
	}
}

func TestShakeUniform(t *testing.T) {
	b := seeded(2)
	const trials = 2000

	counts := make(map[Response]int)
	for i := 0; i < trials; i++ {
		r := b.Shake()
		_, ok := Lookup(r.Text)
		require.True(t, ok)
		counts[r]++
	}

	require.Len(t, counts, 20)
	for r, n := range counts {
		// Expected 100 per response.
		assert.True(t, n > 50 && n < 150, "%q drawn %d times", r.Text, n)
	}
}

func TestAskBlankIsUniformAcrossGroups(t *testing.T) {
	b := seeded(3)
	for _, q := range []string{"", "What will happen?"} {
		counts := countSentiments(600, func() Response { return b.Ask(q) })
		for _, s := range Sentiments() {
			assert.True(t, counts[s] > 120 && counts[s] < 280,
				"question %q: %s drawn %d/600", q, s, counts[s])
		}
	}
}

func TestAskKeywordBias(t *testing.T) {
	tests := []struct {
		name     string
		question string
		expected Sentiment
		min      int
	}{
		{"positive", "love happy good great succeed", Positive, 100},
		{"negative", "fail bad wrong lose hurt afraid", Negative, 100},
		{"uncertain", "maybe perhaps possibly unsure uncertain", Neutral, 100},
		{"successful variant", "Will I be successful?", Positive, 80},
		{"negative variants", "I am worried about failure", Negative, 100},
		{"uncertain variants", "I am doubtful and confused", Neutral, 100},
	}

	b := seeded(4)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := countSentiments(200, func() Response { return b.Ask(tt.question) })
			assert.Greater(t, counts[tt.expected], tt.min)
		})
	}
}

func TestAskNormalizesGroupPopulation(t *testing.T) {
	b := seeded(5)
	const trials = 500

	pos := countSentiments(trials, func() Response { return b.Ask("love happy good") })
	neg := countSentiments(trials, func() Response { return b.Ask("fail bad wrong") })

	posRate := float64(pos[Positive]) / trials
	negRate := float64(neg[Negative]) / trials
	assert.InDelta(t, posRate, negRate, 0.15)
}

func TestAskIsNotMemoized(t *testing.T) {
	b := seeded(6)
	seen := make(map[Response]struct{})
	for i := 0; i < 30; i++ {
		seen[b.Ask("What will happen?")] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a := New(WithSource(NewSeededSource(42)))
	b := New(WithSource(NewSeededSource(42)))
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Ask("Will it rain?"), b.Ask("Will it rain?"))
		require.Equal(t, a.Shake(), b.Shake())
	}
}

func TestDefaultSource(t *testing.T) {
	b := New(WithSource(nil))
	_, ok := Lookup(b.Shake().Text)
	assert.True(t, ok)
}
