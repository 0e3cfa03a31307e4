package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/board-service/internal/model"
	"github.com/maxviazov/board-service/internal/repository"
)

const defaultPageLimit = 50

// orderClauses whitelists ORDER BY fragments; user input never reaches the SQL text.
var orderClauses = map[string]string{
	repository.SortLatest: "created_at DESC, id DESC",
	repository.SortOldest: "created_at ASC, id ASC",
	repository.SortViews:  "view_count DESC, id DESC",
	repository.SortID:     "id ASC",
}

// filterClause mirrors repository.PostFilter.Matches. The tab values coincide with status names.
const filterClause = `
	WHERE ($1::TEXT = '' OR strpos(title, $1) > 0 OR strpos(author, $1) > 0)
	  AND ($2::TEXT IN ('', 'all') OR status = $2)
	  AND ($3::TEXT NOT IN ('progress', 'done') OR status = $3)`

type postRepository struct{ pool *pgxpool.Pool }

func NewPostRepository(pool *pgxpool.Pool) repository.PostRepository {
	return &postRepository{pool: pool}
}

func (r *postRepository) Create(ctx context.Context, p model.Post) (model.Post, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Post{}, err
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO posts (title, author, status, created_at, view_count)
		 VALUES ($1, $2, $3, COALESCE($4, now()), $5)
		 RETURNING id, title, author, status, created_at, view_count`,
		p.Title, p.Author, string(p.Status), nullTime(p), p.ViewCount,
	)
	out, err := scanPost(row)
	if err != nil {
		return model.Post{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (model.Post, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Post{}, err
	}
	row := r.pool.QueryRow(ctx,
		`SELECT id, title, author, status, created_at, view_count FROM posts WHERE id = $1`, id,
	)
	out, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, repository.ErrNotFound
		}
		return model.Post{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *postRepository) List(ctx context.Context, f repository.PostFilter, p repository.Page) (repository.PageResult[model.Post], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Post]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	order, ok := orderClauses[f.Sort]
	if !ok {
		order = orderClauses[repository.SortLatest]
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, author, status, created_at, view_count, COUNT(*) OVER() AS total
		 FROM posts`+filterClause+`
		 ORDER BY `+order+`
		 LIMIT $4 OFFSET $5`,
		f.Keyword, f.Status, f.Tab, limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Post]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Post]{Items: make([]model.Post, 0, limit)}
	for rows.Next() {
		var (
			post   model.Post
			status string
			total  int
		)
		if err := rows.Scan(&post.ID, &post.Title, &post.Author, &status, &post.CreatedAt, &post.ViewCount, &total); err != nil {
			return repository.PageResult[model.Post]{}, repository.MapPgError(err)
		}
		post.Status = model.PostStatus(status)
		res.Items = append(res.Items, post)
		res.Total = total
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Post]{}, repository.MapPgError(err)
	}

	// the window function yields nothing past the last row, so count separately
	if len(res.Items) == 0 && offset > 0 {
		err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`+filterClause, f.Keyword, f.Status, f.Tab).Scan(&res.Total)
		if err != nil {
			return repository.PageResult[model.Post]{}, repository.MapPgError(err)
		}
	}
	return res, nil
}

func scanPost(row pgx.Row) (model.Post, error) {
	var (
		out    model.Post
		status string
	)
	if err := row.Scan(&out.ID, &out.Title, &out.Author, &status, &out.CreatedAt, &out.ViewCount); err != nil {
		return model.Post{}, err
	}
	out.Status = model.PostStatus(status)
	return out, nil
}

func nullTime(p model.Post) any {
	if p.CreatedAt.IsZero() {
		return nil
	}
	return p.CreatedAt
}

func sanitizeLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func ensurePool(pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("pgx pool is nil")
	}
	return nil
}

var _ repository.PostRepository = (*postRepository)(nil)
