// Package contract holds behaviour suites every PostRepository implementation must pass.
package contract

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/maxviazov/board-service/internal/model"
	"github.com/maxviazov/board-service/internal/repository"
)

// PostFactory returns an empty repository and a cleanup func.
type PostFactory func(t *testing.T) (repository.PostRepository, func())

// PingerFactory returns a readiness probe backed by the implementation under test.
type PingerFactory func(t *testing.T) (repository.Pinger, func())

var base = time.Date(2024, 11, 20, 9, 0, 0, 0, time.UTC)

// seed inserts n posts; post i is i days newer than base, has (i*37)%101 views and cycles status.
func seed(t *testing.T, repo repository.PostRepository, n int) []model.Post {
	t.Helper()
	statuses := []model.PostStatus{model.StatusReady, model.StatusProgress, model.StatusDone}
	out := make([]model.Post, 0, n)
	for i := 0; i < n; i++ {
		p, err := repo.Create(context.Background(), model.Post{
			Title:     fmt.Sprintf("Post %02d", i),
			Author:    fmt.Sprintf("author-%d", i%3),
			Status:    statuses[i%3],
			CreatedAt: base.AddDate(0, 0, i),
			ViewCount: (i * 37) % 101,
		})
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
		out = append(out, p)
	}
	return out
}

func RunPostRepositoryContract(t *testing.T, makeRepo PostFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Post{Title: "Design system update", Author: "Hana", Status: model.StatusDone, CreatedAt: base, ViewCount: 241})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID <= 0 {
			t.Fatalf("expected generated id, got %d", created.ID)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Title != created.Title || got.Author != created.Author || got.Status != created.Status || got.ViewCount != 241 || !got.CreatedAt.Equal(base) {
			t.Fatalf("mismatch: %+v vs %+v", got, created)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("create_duplicate_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		p := model.Post{Title: "Dup", Author: "Kim", Status: model.StatusReady, CreatedAt: base}
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := repo.Create(ctx, p); !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seed(t, repo, 9)
		ctx := context.Background()
		res, err := repo.List(ctx, repository.PostFilter{}, repository.Page{Limit: 4, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 4 || res.Total != 9 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		// newest first by default
		if res.Items[0].Title != "Post 08" {
			t.Fatalf("expected newest first, got %q", res.Items[0].Title)
		}
		last, err := repo.List(ctx, repository.PostFilter{}, repository.Page{Limit: 4, Offset: 8})
		if err != nil {
			t.Fatalf("list last: %v", err)
		}
		if len(last.Items) != 1 || last.Total != 9 {
			t.Fatalf("unexpected last page: len=%d total=%d", len(last.Items), last.Total)
		}
	})

	t.Run("list_offset_past_end_keeps_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seed(t, repo, 5)
		res, err := repo.List(context.Background(), repository.PostFilter{}, repository.Page{Limit: 4, Offset: 40})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 0 || res.Total != 5 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
	})

	t.Run("list_filters", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seed(t, repo, 9)
		ctx := context.Background()
		cases := []struct {
			name  string
			f     repository.PostFilter
			total int
		}{
			{"keyword in title", repository.PostFilter{Keyword: "Post 0"}, 9},
			{"keyword in author", repository.PostFilter{Keyword: "author-1"}, 3},
			{"keyword is case sensitive", repository.PostFilter{Keyword: "post"}, 0},
			{"status", repository.PostFilter{Status: "done"}, 3},
			{"status all", repository.PostFilter{Status: repository.FilterAll}, 9},
			{"tab progress", repository.PostFilter{Tab: repository.TabProgress}, 3},
			{"tab and status disagree", repository.PostFilter{Tab: repository.TabDone, Status: "ready"}, 0},
			{"keyword and status", repository.PostFilter{Keyword: "author-2", Status: "done"}, 3},
		}
		for _, tc := range cases {
			res, err := repo.List(ctx, tc.f, repository.Page{Limit: 50})
			if err != nil {
				t.Fatalf("%s: list: %v", tc.name, err)
			}
			if res.Total != tc.total || len(res.Items) != tc.total {
				t.Fatalf("%s: expected %d matches, got total=%d len=%d", tc.name, tc.total, res.Total, len(res.Items))
			}
			for _, p := range res.Items {
				if !tc.f.Matches(p) {
					t.Fatalf("%s: unexpected match %+v", tc.name, p)
				}
			}
		}
	})

	t.Run("list_sorting", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seed(t, repo, 6)
		ctx := context.Background()
		for _, sort := range []string{repository.SortLatest, repository.SortOldest, repository.SortViews, repository.SortID} {
			f := repository.PostFilter{Sort: sort}
			res, err := repo.List(ctx, f, repository.Page{Limit: 50})
			if err != nil {
				t.Fatalf("%s: list: %v", sort, err)
			}
			for i := 1; i < len(res.Items); i++ {
				if f.Less(res.Items[i], res.Items[i-1]) {
					t.Fatalf("%s: items %d and %d out of order", sort, i-1, i)
				}
			}
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	p, cleanup := makePinger(t)
	t.Cleanup(cleanup)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}
