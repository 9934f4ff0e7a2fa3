package services

// englishStopWords is the fixed lexicon used by preprocessing and skill
// filtering. It mirrors the standard English stop-word list, including the
// fragments left behind when contractions are split on the apostrophe
// ("don't" tokenizes to "don" and "t").
var englishStopWords = map[string]struct{}{}

func init() {
	words := []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
		"what", "which", "who", "whom", "this", "that", "these", "those",
		"am", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"a", "an", "the", "and", "but", "if", "or", "because", "as",
		"until", "while", "of", "at", "by", "for", "with", "about",
		"against", "between", "into", "through", "during", "before",
		"after", "above", "below", "to", "from", "up", "down", "in",
		"out", "on", "off", "over", "under", "again", "further", "then",
		"once", "here", "there", "when", "where", "why", "how",
		"all", "any", "both", "each", "few", "more", "most", "other",
		"some", "such", "no", "nor", "not", "only", "own", "same",
		"so", "than", "too", "very", "can", "will", "just", "now",
		"s", "t", "d", "ll", "m", "o", "re", "ve", "y",
		"don", "should", "ain", "aren", "couldn", "didn", "doesn",
		"hadn", "hasn", "haven", "isn", "ma", "mightn", "mustn",
		"needn", "shan", "shouldn", "wasn", "weren", "won", "wouldn",
	}
	for _, w := range words {
		englishStopWords[w] = struct{}{}
	}
}
