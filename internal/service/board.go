package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/board-service/internal/model"
	"github.com/maxviazov/board-service/internal/pagination"
	"github.com/maxviazov/board-service/internal/repository"
)

const (
	defaultPageSize    = 4
	defaultMaxPageSize = 100
)

// boardService holds board use-case logic: validation, page bookkeeping and orchestration.
type boardService struct {
	repo        repository.PostRepository
	pageSize    int
	maxPageSize int
	log         zerolog.Logger
}

// NewBoardService wires the board use cases. Non-positive sizes fall back to 4 and 100.
func NewBoardService(repo repository.PostRepository, pageSize, maxPageSize int, logger zerolog.Logger) BoardService {
	if maxPageSize <= 0 {
		maxPageSize = defaultMaxPageSize
	}
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = min(defaultPageSize, maxPageSize)
	}
	l := logger.With().Str("module", "service").Str("component", "board").Logger()
	return &boardService{repo: repo, pageSize: pageSize, maxPageSize: maxPageSize, log: l}
}

func (s *boardService) ListPosts(ctx context.Context, q ListQuery) (BoardPage, error) {
	f, q, ferrs := normalizeQuery(q, s.pageSize, s.maxPageSize)
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("board query validation failed")
		return BoardPage{}, err
	}
	return s.page(ctx, f, q.Page, q.PageSize)
}

// page fetches the requested page; a page past the end (stale after a filter change)
// lands on the last page instead.
func (s *boardService) page(ctx context.Context, f repository.PostFilter, page, size int) (BoardPage, error) {
	res, err := s.repo.List(ctx, f, repository.Page{Limit: size, Offset: pagination.Offset(page, size)})
	if err != nil {
		s.log.Error().Err(err).Int("page", page).Int("page_size", size).Msg("list posts failed")
		return BoardPage{}, err
	}

	totalPages := pagination.TotalPages(res.Total, size)
	if page > totalPages {
		s.log.Debug().Int("requested", page).Int("total_pages", totalPages).Msg("page out of range, clamping")
		page = totalPages
		res, err = s.repo.List(ctx, f, repository.Page{Limit: size, Offset: pagination.Offset(page, size)})
		if err != nil {
			s.log.Error().Err(err).Int("page", page).Int("page_size", size).Msg("list posts failed")
			return BoardPage{}, err
		}
		totalPages = pagination.TotalPages(res.Total, size)
		page = pagination.Clamp(page, totalPages)
	}

	items := res.Items
	if items == nil {
		items = []model.Post{}
	}
	return BoardPage{
		Items:      items,
		Total:      res.Total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		Window:     pagination.ComputeWindow(totalPages, page),
		HasPrev:    pagination.Previous(totalPages, page).Accepted,
		HasNext:    pagination.Next(totalPages, page).Accepted,
	}, nil
}

func (s *boardService) Navigate(ctx context.Context, q ListQuery, target int) (BoardPage, error) {
	f, q, ferrs := normalizeQuery(q, s.pageSize, s.maxPageSize)
	if err := newInvalidInput(ferrs); err != nil {
		return BoardPage{}, err
	}

	// only the match count matters here
	probe, err := s.repo.List(ctx, f, repository.Page{Limit: 1})
	if err != nil {
		s.log.Error().Err(err).Msg("count posts failed")
		return BoardPage{}, err
	}
	totalPages := pagination.TotalPages(probe.Total, q.PageSize)
	current := pagination.Clamp(q.Page, totalPages)

	decision := pagination.RequestPageChange(target, totalPages, current)
	if !decision.Accepted {
		s.log.Debug().Int("target", target).Int("current", current).Int("total_pages", totalPages).Msg("page change rejected")
		return BoardPage{}, ErrPageChangeRejected
	}
	return s.page(ctx, f, decision.Page, q.PageSize)
}

func (s *boardService) GetPost(ctx context.Context, id int64) (model.Post, error) {
	if id <= 0 {
		return model.Post{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *boardService) CreatePost(ctx context.Context, title, author, status string) (model.Post, error) {
	start := time.Now()
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	status = normalizeEnum(status, string(model.StatusReady))

	if err := newInvalidInput(validatePost(title, author, status)); err != nil {
		s.log.Debug().Str("title", title).Str("author", author).Str("status", status).Msg("post validation failed")
		return model.Post{}, err
	}

	out, err := s.repo.Create(ctx, model.Post{Title: title, Author: author, Status: model.PostStatus(status)})
	if err != nil {
		// repository surfaces domain-level errors already, do not wrap
		s.log.Error().Err(err).Str("title", title).Msg("create post failed")
		return model.Post{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("post_id", out.ID).Msg("post created")
	return out, nil
}
