package rank

import (
	"sort"
	"strings"
	"unicode"

	"hornethive-server/internal/model"
)

// TopicFrequency pairs an extracted topic word with its occurrence count.
type TopicFrequency struct {
	Topic     string `json:"topic"`
	Frequency int    `json:"frequency"`
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "were": {}, "be": {},
	"been": {}, "being": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "should": {}, "could": {},
	"may": {}, "might": {}, "must": {}, "can": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "i": {}, "you": {}, "he": {}, "she": {},
	"it": {}, "we": {}, "they": {}, "my": {}, "your": {}, "his": {},
	"her": {}, "its": {}, "our": {}, "their": {}, "me": {}, "him": {},
	"us": {}, "them": {}, "what": {}, "which": {}, "who": {}, "when": {},
	"where": {}, "why": {}, "how": {},
}

// WeeklyTopics extracts the topN most frequent content words from the posts,
// skipping stop words and words of three characters or fewer. Ties are broken
// alphabetically so the output is stable for a given input.
func WeeklyTopics(posts []model.Post, topN int) []TopicFrequency {
	if len(posts) == 0 || topN <= 0 {
		return nil
	}
	freq := make(map[string]int)
	for _, p := range posts {
		for _, w := range splitWords(p.Content) {
			if _, stop := stopWords[w]; stop || len(w) <= 2 {
				continue
			}
			freq[w]++
		}
	}
	topics := make([]TopicFrequency, 0, len(freq))
	for w, n := range freq {
		topics = append(topics, TopicFrequency{Topic: w, Frequency: n})
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Frequency != topics[j].Frequency {
			return topics[i].Frequency > topics[j].Frequency
		}
		return topics[i].Topic < topics[j].Topic
	})
	if len(topics) > topN {
		topics = topics[:topN]
	}
	return topics
}

// splitWords lowercases text and splits it on anything that is not a letter,
// digit or underscore.
func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}
