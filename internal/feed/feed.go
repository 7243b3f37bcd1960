// Package feed owns the post collection of the session and keeps it in sync with storage.
package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/socialspark/spark/internal/entities"
	"github.com/socialspark/spark/internal/storage"
)

var log = logrus.WithField("package", "feed")

var (
	// ErrNotInitialized is returned on mutation before Initialize.
	ErrNotInitialized = errors.New("feed is not initialized")
	// ErrAlreadyInitialized is returned on the second Initialize.
	ErrAlreadyInitialized = errors.New("feed is already initialized")
	// ErrNotDurable is returned by Flush when posts still could not be written.
	ErrNotDurable = errors.New("posts are not persisted")
)

// Store is the single source of truth for posts.
// Posts are kept newest first; every successful mutation is written through to storage.
type Store struct {
	s storage.Storage

	now   func() time.Time
	newID func() string

	mu          sync.Mutex
	initialized bool
	durable     bool
	posts       []entities.Post
}

// New creates new instance of Store. Initialize must be called before any mutation.
func New(s storage.Storage) *Store {
	return &Store{
		s:     s,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Initialize loads posts from storage. Absent or malformed record seeds the default posts.
// When storage can not be read the store stays uninitialized, so no mutation may overwrite the stored record;
// Flush retries the load later.
func (f *Store) Initialize(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return ErrAlreadyInitialized
	}

	return f.initialize(ctx)
}

func (f *Store) initialize(ctx context.Context) error {
	posts, seeded, err := f.load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	f.posts = posts
	f.initialized = true
	f.durable = true

	if seeded {
		f.persist(ctx)
	}

	return nil
}

// load returns seeded=true when defaults replace an absent or malformed record and should be written back.
func (f *Store) load(ctx context.Context) (posts []entities.Post, seeded bool, err error) {
	v, err := f.s.Load(ctx, entities.PostsKey)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		log.Info("no stored posts, seeding defaults")
		return DefaultPosts(f.now()), true, nil
	default:
		return nil, false, err
	}

	posts, skipped, err := DecodePosts(v)
	if err != nil {
		log.WithError(err).Warn("stored posts are malformed, seeding defaults")
		return DefaultPosts(f.now()), true, nil
	}

	if len(skipped) > 0 {
		log.WithField("indices", skipped).Warn("skipped invalid post records")
	}

	log.WithField("count", len(posts)).Debug("posts loaded")

	return posts, false, nil
}

// Posts returns a copy of the collection in storage order.
func (f *Store) Posts() []entities.Post {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]entities.Post, len(f.posts))
	for i, v := range f.posts {
		out[i] = v.Clone()
	}

	return out
}

// Durable reports whether posts are loaded and the last write-through succeeded.
func (f *Store) Durable() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.initialized && f.durable
}

// Flush retries the load when storage was unreadable on Initialize, and the write-through after a failed one.
// Does nothing when storage is up to date.
func (f *Store) Flush(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return f.initialize(ctx)
	}

	if f.durable {
		return nil
	}

	if f.persist(ctx); !f.durable {
		return ErrNotDurable
	}

	return nil
}

// CreatePost prepends a new post authored by author.
func (f *Store) CreatePost(ctx context.Context, author *entities.User, content, imageURL string) (entities.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.check(author); err != nil {
		return entities.Post{}, err
	}

	imageURL = strings.TrimSpace(imageURL)
	if strings.TrimSpace(content) == "" && imageURL == "" {
		return entities.Post{}, fmt.Errorf("%w: post has neither content nor image", entities.ErrValidation)
	}

	p := entities.Post{
		ID:           f.newID(),
		UserID:       author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Content:      content,
		ImageURL:     imageURL,
		Likes:        []string{},
		Timestamp:    f.now().UnixMilli(),
	}

	for f.index(p.ID) >= 0 {
		p.ID = f.newID()
	}

	f.posts = append([]entities.Post{p}, f.posts...)
	f.persist(ctx)

	return p.Clone(), nil
}

// DeletePost removes the post if requester is its author.
func (f *Store) DeletePost(ctx context.Context, requester *entities.User, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.check(requester); err != nil {
		return err
	}

	i := f.index(id)
	if i < 0 {
		return fmt.Errorf("%w: post %s", entities.ErrNotFound, id)
	}

	if f.posts[i].UserID != requester.ID {
		return fmt.Errorf("%w: %s is not the author of post %s", entities.ErrPermissionDenied, requester.ID, id)
	}

	f.posts = append(f.posts[:i:i], f.posts[i+1:]...)
	f.persist(ctx)

	return nil
}

// ToggleLike flips requester's membership in the likes of the post.
func (f *Store) ToggleLike(ctx context.Context, requester *entities.User, id string) (entities.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.check(requester); err != nil {
		return entities.Post{}, err
	}

	i := f.index(id)
	if i < 0 {
		return entities.Post{}, fmt.Errorf("%w: post %s", entities.ErrNotFound, id)
	}

	p := f.posts[i].Clone()
	if p.LikedBy(requester.ID) {
		likes := p.Likes[:0]
		for _, v := range p.Likes {
			if v != requester.ID {
				likes = append(likes, v)
			}
		}
		p.Likes = likes
	} else {
		p.Likes = append(p.Likes, requester.ID)
	}

	f.posts[i] = p
	f.persist(ctx)

	return p.Clone(), nil
}

// EditPost replaces content of the post if requester is its author.
// Content equal to the current one after trimming is a no-op.
func (f *Store) EditPost(ctx context.Context, requester *entities.User, id, content string) (entities.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.check(requester); err != nil {
		return entities.Post{}, err
	}

	i := f.index(id)
	if i < 0 {
		return entities.Post{}, fmt.Errorf("%w: post %s", entities.ErrNotFound, id)
	}

	p := f.posts[i]
	if p.UserID != requester.ID {
		return entities.Post{}, fmt.Errorf("%w: %s is not the author of post %s", entities.ErrPermissionDenied, requester.ID, id)
	}

	if strings.TrimSpace(content) == p.Content || content == p.Content {
		return p.Clone(), nil
	}

	if strings.TrimSpace(content) == "" && p.ImageURL == "" {
		return entities.Post{}, fmt.Errorf("%w: post would have neither content nor image", entities.ErrValidation)
	}

	f.posts[i].Content = content
	f.persist(ctx)

	return f.posts[i].Clone(), nil
}

func (f *Store) check(u *entities.User) error {
	if !f.initialized {
		return ErrNotInitialized
	}

	if u == nil || u.ID == "" {
		return entities.ErrUnauthenticated
	}

	return nil
}

func (f *Store) index(id string) int {
	for i := range f.posts {
		if f.posts[i].ID == id {
			return i
		}
	}

	return -1
}

// persist writes the whole collection. Failure keeps the store in memory-only mode until the next successful write.
func (f *Store) persist(ctx context.Context) {
	v, err := EncodePosts(f.posts)
	if err == nil {
		err = f.s.Save(ctx, entities.PostsKey, v)
	}

	if err != nil {
		if f.durable {
			log.WithError(err).Error("failed to persist posts, continuing in memory")
		} else {
			log.WithError(err).Warn("failed to persist posts")
		}
		f.durable = false

		return
	}

	if !f.durable {
		log.Info("posts persisted again")
	}
	f.durable = true
}
