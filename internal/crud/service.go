package crud

import (
	"context"

	"github.com/dinaskp/perikanan-backend/internal/domain"
)

// Invalidator is the narrow cache contract the service needs: every
// mutation drops all cached entries under the entity's prefix. Stale
// reference data silently serving wrong results is worse than a cache miss,
// so invalidation is tied to writes rather than TTL alone.
type Invalidator interface {
	InvalidatePrefix(ctx context.Context, prefix string)
}

// Service wraps a Repository with the business rules shared by every
// entity: create defaults, the natural-key uniqueness pre-check, the
// existence check before update, and cache invalidation on mutation.
type Service[T any] struct {
	repo  *Repository[T]
	cfg   EntityConfig
	cache Invalidator

	// defaults fills entity-specific default values on create; nil when the
	// entity has none.
	defaults func(*T)

	// naturalKey extracts the natural-key value from a record; nil when the
	// entity has no natural key.
	naturalKey func(*T) string
}

// NewService creates a Service. cache, defaults, and naturalKey may be nil.
func NewService[T any](repo *Repository[T], cfg EntityConfig, cache Invalidator, defaults func(*T), naturalKey func(*T) string) *Service[T] {
	return &Service[T]{
		repo:       repo,
		cfg:        cfg,
		cache:      cache,
		defaults:   defaults,
		naturalKey: naturalKey,
	}
}

// Config returns the entity configuration this service was built with.
func (s *Service[T]) Config() EntityConfig { return s.cfg }

// List returns one page of records.
func (s *Service[T]) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[T], error) {
	return s.repo.List(ctx, req)
}

// Get retrieves a single record by id.
func (s *Service[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

// Create applies defaults, runs the natural-key pre-check, and inserts the
// record. The pre-check exists for the friendly duplicate message; two
// concurrent requests can both pass it, and the store-level unique
// constraint remains the authoritative guard (the repository maps its
// violation to the same duplicate condition).
func (s *Service[T]) Create(ctx context.Context, row *T) (*T, error) {
	if s.defaults != nil {
		s.defaults(row)
	}

	if err := s.checkNaturalKey(ctx, row); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return row, nil
}

// Update verifies existence, runs the uniqueness pre-check when the natural
// key itself is being changed, applies the partial change set, and returns
// the record re-read with its display joins.
func (s *Service[T]) Update(ctx context.Context, id uint, changes map[string]any) (*T, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkNaturalKeyChange(ctx, current, changes); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

// Delete hard-deletes the record and returns the removed row for the
// caller's before-snapshot.
func (s *Service[T]) Delete(ctx context.Context, id uint) (*T, error) {
	row, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return row, nil
}

// checkNaturalKey rejects a create whose natural key is already registered.
func (s *Service[T]) checkNaturalKey(ctx context.Context, row *T) error {
	if s.naturalKey == nil {
		return nil
	}
	key := s.naturalKey(row)
	if key == "" {
		return nil
	}

	_, err := s.repo.GetByNaturalKey(ctx, key)
	switch {
	case err == nil:
		return domain.AlreadyExists(s.cfg.DuplicateMessage())
	case domain.IsNotFound(err):
		return nil
	default:
		return err
	}
}

// checkNaturalKeyChange rejects an update that would move the record onto
// another record's natural key. Keeping the same key is always allowed.
func (s *Service[T]) checkNaturalKeyChange(ctx context.Context, current *T, changes map[string]any) error {
	if s.naturalKey == nil || s.cfg.NaturalKeyColumn == "" {
		return nil
	}

	raw, ok := changes[s.cfg.NaturalKeyColumn]
	if !ok {
		return nil
	}
	next, ok := raw.(string)
	if !ok || next == "" || next == s.naturalKey(current) {
		return nil
	}

	_, err := s.repo.GetByNaturalKey(ctx, next)
	switch {
	case err == nil:
		return domain.AlreadyExists(s.cfg.DuplicateMessage())
	case domain.IsNotFound(err):
		return nil
	default:
		return err
	}
}

func (s *Service[T]) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.InvalidatePrefix(ctx, s.cfg.CachePrefix())
	}
}
