package eightball

// Response is one of the fixed answers the ball can give.
type Response struct {
	Text      string
	Sentiment Sentiment
}

var catalog = [...]Response{
	{"It is certain", Positive},
	{"It is decidedly so", Positive},
	{"Without a doubt", Positive},
	{"Yes, definitely", Positive},
	{"You may rely on it", Positive},
	{"As I see it, yes", Positive},
	{"Most likely", Positive},
	{"Outlook good", Positive},
	{"Yes", Positive},
	{"Signs point to yes", Positive},

	{"Reply hazy, try again", Neutral},
	{"Ask again later", Neutral},
	{"Better not tell you now", Neutral},
	{"Cannot predict now", Neutral},
	{"Concentrate and ask again", Neutral},

	{"Don't count on it", Negative},
	{"My reply is no", Negative},
	{"My sources say no", Negative},
	{"Outlook not so good", Negative},
	{"Very doubtful", Negative},
}

// byGroup indexes the catalog by sentiment, built once at init.
var byGroup = func() map[Sentiment][]Response {
	m := make(map[Sentiment][]Response, len(sentiments))
	for _, r := range catalog {
		m[r.Sentiment] = append(m[r.Sentiment], r)
	}
	return m
}()

// Responses returns a copy of the full catalog in canonical order.
func Responses() []Response {
	out := make([]Response, len(catalog))
	copy(out, catalog[:])
	return out
}

// ResponsesFor returns a copy of the catalog members with the given sentiment.
func ResponsesFor(s Sentiment) []Response {
	group := byGroup[s]
	out := make([]Response, len(group))
	copy(out, group)
	return out
}

// Lookup finds the catalog entry with the given text.
func Lookup(text string) (Response, bool) {
	for _, r := range catalog {
		if r.Text == text {
			return r, true
		}
	}
	return Response{}, false
}

type keywordSet map[string]struct{}

func newKeywordSet(words ...string) keywordSet {
	s := make(keywordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s keywordSet) list() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	return out
}

var positiveKeywords = newKeywordSet(
	"love", "loved", "loving", "lovely",
	"happy", "happiness", "happily",
	"good", "great",
	"succeed", "success", "successful", "successfully",
	"win", "winning", "winner",
	"achieve", "achieved", "achievement", "achieving",
	"help", "helped", "helpful", "helping",
	"better", "best",
	"improve", "improved", "improvement", "improving",
	"wonderful", "wonderfully",
	"amazing", "amazed", "amazingly",
	"excellent", "excellence",
	"fantastic",
	"perfect", "perfectly",
	"right",
	"hope", "hoping", "hopeful", "hopefully",
	"lucky", "fortunate", "fortune",
	"brilliant", "awesome", "outstanding",
	"confident", "confidence",
	"joy", "joyful",
	"positive", "optimistic",
	"beautiful", "superb", "exceptional",
	"thrive", "thriving", "prosper", "prosperity",
)

var negativeKeywords = newKeywordSet(
	"fail", "failed", "failing", "failure",
	"bad", "badly",
	"wrong", "wrongly",
	"lose", "losing", "loser", "lost",
	"hurt", "hurting", "hurtful",
	"afraid",
	"worried", "worry", "worrying",
	"risk", "risky",
	"danger", "dangerous", "dangerously",
	"problem", "problematic", "problems",
	"issue", "issues",
	"trouble", "troubled", "troubling",
	"difficult", "difficulty",
	"worse", "worst",
	"terrible", "terribly",
	"awful", "awfully",
	"horrible", "horribly",
	"never",
	"impossible", "impossibly",
	"hate", "hated", "hating", "hatred",
	"sad", "sadly", "sadness",
	"angry", "anger",
	"fear", "fearful", "feared",
	"regret", "regretful", "regretting",
	"disaster", "disastrous",
	"miserable", "miserably",
	"unfortunate", "unfortunately",
	"painful", "painfully", "pain",
	"destroy", "destroyed", "destruction",
	"ruin", "ruined",
)

var uncertainKeywords = newKeywordSet(
	"maybe", "perhaps", "possibly", "possible",
	"unsure", "uncertain", "uncertainty",
	"think", "thinking",
	"guess", "guessing",
	"wonder", "wondering",
	"doubt", "doubtful", "doubting",
	"complicated",
	"confusing", "confused", "confuse",
	"might", "could",
	"sometimes", "somehow",
	"unclear", "unknown",
	"depends", "depending",
	"questionable",
	"undecided", "indecisive",
	"probably", "likely",
	"chance", "chances",
)

// PositiveKeywords returns the tokens that boost the positive group.
func PositiveKeywords() []string { return positiveKeywords.list() }

// NegativeKeywords returns the tokens that boost the negative group.
func NegativeKeywords() []string { return negativeKeywords.list() }

// UncertainKeywords returns the tokens that boost the neutral group.
func UncertainKeywords() []string { return uncertainKeywords.list() }
