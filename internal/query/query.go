// Package query projects a post collection into a filtered, sorted feed.
package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/socialspark/spark/internal/entities"
)

// ErrInvalidSortMode ...
var ErrInvalidSortMode = errors.New("invalid sort mode")

// ParseSortMode accepts LATEST, OLDEST and MOST_LIKED in any case. Empty string means LATEST.
func ParseSortMode(s string) (entities.SortMode, error) {
	switch m := entities.SortMode(strings.ToUpper(s)); m {
	case entities.SortLatest, entities.SortOldest, entities.SortMostLiked:
		return m, nil
	case "":
		return entities.SortLatest, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidSortMode, s)
	}
}

// Project returns posts matching term ordered by mode.
// Matching is case-insensitive substring search over content and author name.
// Sorting is stable: posts which compare equal keep their order from the input.
// Unknown mode keeps the input order. posts is never modified.
func Project(posts []entities.Post, term string, mode entities.SortMode) []entities.Post {
	term = strings.ToLower(term)

	out := make([]entities.Post, 0, len(posts))
	for _, p := range posts {
		if matches(p, term) {
			out = append(out, p.Clone())
		}
	}

	if less := lessFunc(out, mode); less != nil {
		sort.SliceStable(out, less)
	}

	return out
}

func matches(p entities.Post, term string) bool {
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.Content), term) ||
		strings.Contains(strings.ToLower(p.AuthorName), term)
}

func lessFunc(p []entities.Post, mode entities.SortMode) func(i, j int) bool {
	switch mode {
	case entities.SortLatest:
		return func(i, j int) bool { return p[i].Timestamp > p[j].Timestamp }
	case entities.SortOldest:
		return func(i, j int) bool { return p[i].Timestamp < p[j].Timestamp }
	case entities.SortMostLiked:
		return func(i, j int) bool { return len(p[i].Likes) > len(p[j].Likes) }
	default:
		return nil
	}
}
