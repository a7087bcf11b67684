package lexicon

// defaultPositive and defaultNegative are the built-in English marker terms.
// They intentionally stay small and unambiguous; domain-specific vocabulary
// belongs in the config additions.
var defaultPositive = []string{
	"good", "great", "excellent", "amazing", "awesome", "wonderful",
	"fantastic", "perfect", "best", "love", "loved", "like", "liked",
	"happy", "satisfied", "satisfying", "helpful", "friendly", "fast",
	"quick", "easy", "smooth", "recommend", "recommended", "thanks",
	"thank", "pleased", "impressive", "impressed", "reliable", "clean",
	"fresh", "delicious", "enjoyable", "enjoyed", "convenient",
}

var defaultNegative = []string{
	"bad", "terrible", "awful", "horrible", "worst", "poor", "hate",
	"hated", "dislike", "disliked", "disappointed", "disappointing",
	"unhappy", "unsatisfied", "dissatisfied", "problem", "problems",
	"issue", "issues", "broken", "slow", "late", "delay", "delayed",
	"rude", "unhelpful", "difficult", "confusing", "complicated",
	"expensive", "overpriced", "dirty", "stale", "wait", "waiting",
	"complaint", "refund", "failed", "failure", "error", "errors",
}
