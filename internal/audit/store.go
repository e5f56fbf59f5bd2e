package audit

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/dinaskp/perikanan-backend/internal/domain"
	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Store is the narrow append interface the audit trail is reached through.
// Entries are never mutated or deleted by the core; List exists for the
// read surface and the agent tools.
type Store interface {
	Append(ctx context.Context, entry *domain.ActivityLog) error
	List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.ActivityLog], error)
}

// listFilterColumns maps recognized activity-log query parameters to columns.
var listFilterColumns = map[string]string{
	"module":  "module",
	"action":  "action",
	"status":  "status",
	"user_id": "user_id",
}

// listSearchColumns are the text columns the free-text term matches against.
var listSearchColumns = []string{"description", "user_name", "path"}

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a GORM-backed Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Append(ctx context.Context, entry *domain.ActivityLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

// List returns a page of entries, newest first, with the same
// count-and-data fan-out as the entity repositories.
func (s *gormStore) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.ActivityLog], error) {
	conditions := func(db *gorm.DB) *gorm.DB {
		return db.Scopes(
			pkg.Search(req.Search, listSearchColumns),
			pkg.Filter(req.Filter, listFilterColumns),
		)
	}

	var (
		total int64
		rows  []domain.ActivityLog
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&domain.ActivityLog{}).Scopes(conditions).Count(&total).Error
	})

	g.Go(func() error {
		return s.db.WithContext(gctx).Scopes(conditions).
			Order("created_at DESC").
			Scopes(pkg.Paginate(req)).
			Find(&rows).Error
	})

	if err := g.Wait(); err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "database error", err)
	}

	return pkg.NewPageResult(rows, total, req), nil
}
