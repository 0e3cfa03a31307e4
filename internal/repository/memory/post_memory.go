// Package memory keeps board posts in process memory. It backs local runs and the demo site.
package memory

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/maxviazov/board-service/internal/model"
	"github.com/maxviazov/board-service/internal/repository"
)

//go:embed seed.yaml
var defaultSeed []byte

const defaultPageLimit = 50

type seedFile struct {
	Posts []model.Post `yaml:"posts"`
}

// PostRepository is a mutex-guarded in-memory repository.PostRepository.
type PostRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]model.Post
	now    func() time.Time
}

// NewPostRepository returns an empty repository.
func NewPostRepository() *PostRepository {
	return &PostRepository{nextID: 1, items: map[int64]model.Post{}, now: time.Now}
}

// NewSeededPostRepository loads posts from path, or from the embedded demo board when path is empty.
func NewSeededPostRepository(path string) (*PostRepository, error) {
	data := defaultSeed
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	r := NewPostRepository()
	for _, p := range sf.Posts {
		if err := r.insert(p); err != nil {
			return nil, fmt.Errorf("seed post %d: %w", p.ID, err)
		}
	}
	return r, nil
}

// insert stores p under its own id when set, keeping nextID ahead of every stored id.
func (r *PostRepository) insert(p model.Post) error {
	if !p.Status.Valid() {
		return repository.ErrConflict
	}
	for _, existing := range r.items {
		if existing.Title == p.Title && existing.Author == p.Author {
			return repository.ErrAlreadyExists
		}
	}
	if p.ID <= 0 {
		p.ID = r.nextID
	} else if _, taken := r.items[p.ID]; taken {
		return repository.ErrAlreadyExists
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.now().UTC()
	}
	r.items[p.ID] = p
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	return nil
}

func (r *PostRepository) Create(ctx context.Context, p model.Post) (model.Post, error) {
	if err := ctx.Err(); err != nil {
		return model.Post{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = 0
	if err := r.insert(p); err != nil {
		return model.Post{}, err
	}
	return r.items[r.nextID-1], nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (model.Post, error) {
	if err := ctx.Err(); err != nil {
		return model.Post{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return model.Post{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context, f repository.PostFilter, p repository.Page) (repository.PageResult[model.Post], error) {
	if err := ctx.Err(); err != nil {
		return repository.PageResult[model.Post]{}, err
	}
	limit, offset := p.Limit, p.Offset
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	matches := make([]model.Post, 0, len(r.items))
	for _, post := range r.items {
		if f.Matches(post) {
			matches = append(matches, post)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(matches, func(a, b model.Post) int {
		switch {
		case f.Less(a, b):
			return -1
		case f.Less(b, a):
			return 1
		default:
			return 0
		}
	})

	res := repository.PageResult[model.Post]{Items: []model.Post{}, Total: len(matches)}
	if offset < len(matches) {
		end := min(offset+limit, len(matches))
		res.Items = append(res.Items, matches[offset:end]...)
	}
	return res, nil
}

// Ping always succeeds; memory is ready as soon as it exists.
func (r *PostRepository) Ping(ctx context.Context) error { return ctx.Err() }

var (
	_ repository.PostRepository = (*PostRepository)(nil)
	_ repository.Pinger         = (*PostRepository)(nil)
)
