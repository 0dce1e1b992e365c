package inbox

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Filter returns the messages matching query, best matches first. Substring
// hits rank above fuzzy hits; fuzzy hits compare the query with each word of
// the sender and subject and allow roughly one typo per three letters.
func Filter(messages []Message, query string) []Message {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return slices.Clone(messages)
	}

	type scored struct {
		msg   Message
		score int
	}
	var hits []scored
	for _, m := range messages {
		if s, ok := score(m, query); ok {
			hits = append(hits, scored{msg: m, score: s})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored) int { return a.score - b.score })

	out := make([]Message, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.msg)
	}
	return out
}

func score(m Message, query string) (int, bool) {
	haystack := strings.ToLower(m.From + " " + m.Subject + " " + m.Preview)
	if strings.Contains(haystack, query) {
		return 0, true
	}
	limit := max(1, len([]rune(query))/3)
	best := -1
	for _, word := range strings.Fields(strings.ToLower(m.From + " " + m.Subject)) {
		word = strings.Trim(word, ".,:;!?'\"")
		d := levenshtein.ComputeDistance(query, word)
		if d <= limit && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
