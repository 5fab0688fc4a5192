package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"guest-admin/config"
	"guest-admin/models"
	"guest-admin/repositories"
	"guest-admin/validation"
)

// childService holds the CRUD steps shared by every table that hangs off
// a guest. Writes are validated first; a failed validation never reaches
// the repository. normalize runs on valid rows right before they are stored.
type childService[T any] struct {
	name      string
	repo      repositories.Repository[T]
	guests    repositories.Repository[models.Guest]
	validate  func(T) validation.Result
	normalize func(*T)
	orderBy   string
}

func (s childService[T]) ensureGuest(ctx context.Context, guestID string) error {
	if guestID == "" {
		return ErrGuestNotFound
	}
	ok, err := s.guests.Exists(ctx, guestID)
	if err != nil {
		return fmt.Errorf("%s: check guest: %w", s.name, err)
	}
	if !ok {
		return ErrGuestNotFound
	}
	return nil
}

func (s childService[T]) listByGuest(ctx context.Context, guestID string) ([]T, error) {
	if err := s.ensureGuest(ctx, guestID); err != nil {
		return nil, err
	}
	rows, err := s.repo.Find(ctx, repositories.Query{
		Filters: []repositories.Filter{repositories.Eq("guest_id", guestID)},
		Order:   []repositories.Order{{Column: s.orderBy, Desc: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: list: %w", s.name, err)
	}
	return rows, nil
}

func (s childService[T]) get(ctx context.Context, id string) (*T, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: get %s: %w", s.name, id, err)
	}
	return row, nil
}

func (s childService[T]) create(ctx context.Context, guestID string, entity *T) error {
	if err := s.validate(*entity).Err(); err != nil {
		return err
	}
	if err := s.ensureGuest(ctx, guestID); err != nil {
		return err
	}
	s.normalizeRow(entity)
	if err := s.repo.Create(ctx, entity); err != nil {
		config.Log.Error("create failed", zap.String("table", s.name), zap.String("guest_id", guestID), zap.Error(err))
		return fmt.Errorf("%s: create: %w", s.name, err)
	}
	return nil
}

// update loads the row, lets apply overwrite it, validates the result and
// saves every column.
func (s childService[T]) update(ctx context.Context, id string, apply func(row *T)) (*T, error) {
	row, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(row)
	if err := s.validate(*row).Err(); err != nil {
		return nil, err
	}
	s.normalizeRow(row)
	if err := s.repo.Save(ctx, row); err != nil {
		config.Log.Error("update failed", zap.String("table", s.name), zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%s: update %s: %w", s.name, id, err)
	}
	return row, nil
}

func (s childService[T]) delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if repositories.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("%s: delete %s: %w", s.name, id, err)
	}
	config.Log.Info("deleted", zap.String("table", s.name), zap.String("id", id))
	return nil
}

func (s childService[T]) normalizeRow(row *T) {
	if s.normalize != nil {
		s.normalize(row)
	}
}

// Date columns hold YYYY-MM-DD only; range filters and day buckets compare
// on that form.
func normalizeDate(date *string) {
	*date = validation.NormalizeDate(*date)
}

func normalizeOptionalDate(date **string) {
	if *date == nil {
		return
	}
	if **date == "" {
		*date = nil
		return
	}
	d := validation.NormalizeDate(**date)
	*date = &d
}
