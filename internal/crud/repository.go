package crud

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Repository is the generic data-access object for one entity. It performs
// parameterized queries only; audit logging is the caller's responsibility.
type Repository[T any] struct {
	db  *gorm.DB
	cfg EntityConfig
}

// NewRepository creates a Repository for the entity described by cfg.
func NewRepository[T any](db *gorm.DB, cfg EntityConfig) *Repository[T] {
	return &Repository[T]{db: db, cfg: cfg}
}

// List returns one page of records with pagination metadata. The count
// query and the data query run concurrently and share a single
// filter-to-predicate translation, so total can never drift from the data
// filter. They are not transactionally isolated from concurrent writers;
// a briefly stale total is acceptable for a listing.
func (r *Repository[T]) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[T], error) {
	conditions := func(db *gorm.DB) *gorm.DB {
		return db.Scopes(
			pkg.Search(req.Search, r.cfg.SearchColumns),
			pkg.Filter(req.Filter, r.cfg.FilterColumns),
		)
	}

	var (
		total int64
		rows  []T
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.db.WithContext(gctx).Model(new(T)).Scopes(conditions).Count(&total).Error
	})

	g.Go(func() error {
		q := r.db.WithContext(gctx).Scopes(conditions)
		for _, p := range r.cfg.Preloads {
			q = q.Preload(p)
		}
		if r.cfg.DefaultOrder != "" {
			q = q.Order(r.cfg.DefaultOrder)
		}
		return q.Scopes(pkg.Paginate(req)).Find(&rows).Error
	})

	if err := g.Wait(); err != nil {
		return nil, r.mapError(err)
	}

	return pkg.NewPageResult(rows, total, req), nil
}

// GetByID retrieves a single record with the same display joins as List.
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	q := r.db.WithContext(ctx)
	for _, p := range r.cfg.Preloads {
		q = q.Preload(p)
	}

	var row T
	if err := q.First(&row, id).Error; err != nil {
		return nil, r.mapError(err)
	}
	return &row, nil
}

// GetByNaturalKey looks a record up by its natural key. Used only as the
// pre-insert/pre-update uniqueness check; not exposed over the wire.
func (r *Repository[T]) GetByNaturalKey(ctx context.Context, key string) (*T, error) {
	if r.cfg.NaturalKeyColumn == "" {
		return nil, domain.ErrNotFound
	}

	var row T
	err := r.db.WithContext(ctx).Where(r.cfg.NaturalKeyColumn+" = ?", key).First(&row).Error
	if err != nil {
		return nil, r.mapError(err)
	}
	return &row, nil
}

// Create inserts the record and fills in its generated id and timestamps.
func (r *Repository[T]) Create(ctx context.Context, row *T) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return r.mapError(err)
	}
	return nil
}

// Update applies only the supplied column changes to the record with the
// given id; GORM refreshes updated_at alongside. Returns not-found when no
// row matched.
func (r *Repository[T]) Update(ctx context.Context, id uint, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return r.mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound(r.cfg.NotFoundMessage())
	}
	return nil
}

// Delete hard-deletes the record and returns the removed row, so the caller
// can audit-log a before-snapshot without a separate read. Deleting a
// nonexistent id returns not-found, never an internal error.
func (r *Repository[T]) Delete(ctx context.Context, id uint) (*T, error) {
	var row T
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.mapError(err)
	}

	if err := r.db.WithContext(ctx).Delete(&row).Error; err != nil {
		return nil, r.mapError(err)
	}
	return &row, nil
}

// mapError converts GORM errors to domain errors with entity-specific
// client-facing messages. The unique-constraint violation is the
// authoritative duplicate signal; the service-level pre-check only provides
// the fast-path friendly message.
func (r *Repository[T]) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(r.cfg.NotFoundMessage())
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.AlreadyExists(r.cfg.DuplicateMessage())
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. Not all GORM dialectors translate driver-level errors to
// gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
