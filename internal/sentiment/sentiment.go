package sentiment

import "strings"

// Sentiment is the category assigned to a review at creation time.
// Only the three values below are ever persisted.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

var (
	positiveKeywords = []string{"хорош", "люблю"}
	negativeKeywords = []string{"плохо", "ненавиж"}
)

// Classify maps review text to a sentiment by case-insensitive substring
// matching against the fixed keyword lists. The positive check runs first,
// so text containing keywords from both lists classifies as positive.
// Total over all inputs; the empty string is neutral.
func Classify(text string) Sentiment {
	lowerText := strings.ToLower(text)

	for _, keyword := range positiveKeywords {
		if strings.Contains(lowerText, keyword) {
			return Positive
		}
	}
	for _, keyword := range negativeKeywords {
		if strings.Contains(lowerText, keyword) {
			return Negative
		}
	}
	return Neutral
}
