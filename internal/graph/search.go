package graph

import "strings"

// Match filters labels to those containing query, case-insensitively.
// An empty query matches nothing: the caller interprets that as "clear
// all highlights". The result preserves the input order.
func Match(query string, labels []string) []string {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var matched []string
	for _, label := range labels {
		if strings.Contains(strings.ToLower(label), q) {
			matched = append(matched, label)
		}
	}
	return matched
}
