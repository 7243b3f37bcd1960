package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/socialspark/spark/internal/entities"
)

// ErrMalformed is returned when a stored blob is not a list of posts.
var ErrMalformed = errors.New("malformed posts record")

// postRecord mirrors the stored shape. Pointers tell absent fields from zero values.
type postRecord struct {
	ID           *string   `json:"id"`
	UserID       *string   `json:"userId"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar string    `json:"authorAvatar"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"imageUrl"`
	Likes        *[]string `json:"likes"`
	Timestamp    *int64    `json:"timestamp"`
}

// EncodePosts serializes the whole collection.
func EncodePosts(posts []entities.Post) (string, error) {
	if posts == nil {
		posts = []entities.Post{}
	}

	b, err := json.Marshal(posts)
	if err != nil {
		return "", fmt.Errorf("failed to marshal posts: %w", err)
	}

	return string(b), nil
}

// DecodePosts parses a stored collection. A blob which is not a JSON array fails with ErrMalformed.
// Individual records without id, userId or timestamp, and records repeating an earlier id, are skipped;
// their indices are returned in skipped. Duplicate likes are collapsed.
func DecodePosts(s string) (posts []entities.Post, skipped []int, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrMalformed, err.Error())
	}

	if raw == nil {
		return nil, nil, fmt.Errorf("%w: null", ErrMalformed)
	}

	posts = make([]entities.Post, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for i, v := range raw {
		p, ok := decodePost(v)
		if !ok {
			skipped = append(skipped, i)
			continue
		}

		if _, ok := seen[p.ID]; ok {
			skipped = append(skipped, i)
			continue
		}
		seen[p.ID] = struct{}{}

		posts = append(posts, p)
	}

	return posts, skipped, nil
}

func decodePost(b []byte) (entities.Post, bool) {
	var r postRecord
	if err := json.Unmarshal(b, &r); err != nil {
		return entities.Post{}, false
	}

	if r.ID == nil || strings.TrimSpace(*r.ID) == "" ||
		r.UserID == nil || *r.UserID == "" ||
		r.Timestamp == nil || *r.Timestamp <= 0 {
		return entities.Post{}, false
	}

	var likes []string
	if r.Likes != nil {
		likes = *r.Likes
	}

	return entities.Post{
		ID:           *r.ID,
		UserID:       *r.UserID,
		AuthorName:   r.AuthorName,
		AuthorAvatar: r.AuthorAvatar,
		Content:      r.Content,
		ImageURL:     r.ImageURL,
		Likes:        uniqueStrings(likes),
		Timestamp:    *r.Timestamp,
	}, true
}

func uniqueStrings(s []string) []string {
	m := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))

	for _, v := range s {
		if v == "" {
			continue
		}
		if _, ok := m[v]; !ok {
			m[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
