package keywords

// defaultStopTerms contains English function words and high-frequency filler
// that carry no topical value for keyword ranking.
var defaultStopTerms = []string{
	// Articles and determiners
	"a", "an", "the", "this", "that", "these", "those", "some", "any",
	"each", "every", "all", "both", "no", "such",
	// Pronouns
	"i", "me", "my", "mine", "we", "us", "our", "ours", "you", "your",
	"yours", "he", "him", "his", "she", "her", "hers", "it", "its",
	"they", "them", "their", "theirs", "who", "whom", "which", "what",
	// Copulas and auxiliaries
	"am", "is", "are", "was", "were", "be", "been", "being", "do",
	"does", "did", "done", "have", "has", "had", "having", "will",
	"would", "can", "could", "shall", "should", "may", "might", "must",
	// Conjunctions and prepositions
	"and", "or", "but", "nor", "so", "yet", "if", "then", "than",
	"because", "while", "when", "where", "how", "why", "of", "to",
	"in", "on", "at", "by", "for", "with", "about", "into", "onto",
	"from", "up", "down", "out", "off", "over", "under", "again",
	// Fillers
	"very", "really", "just", "also", "too", "not", "only", "more",
	"most", "much", "many", "as", "well", "there", "here", "now",
	"get", "got", "one", "ok", "okay",
}
