package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fitstore/fitstore-go/internal/model"
	"github.com/fitstore/fitstore-go/internal/repository"
)

var ErrItemNotFound = errors.New("item not found")

// ItemService handles item business logic.
type ItemService struct {
	items  ItemStore
	logger *slog.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(items ItemStore, logger *slog.Logger) *ItemService {
	return &ItemService{items: items, logger: logger}
}

// CreateItem creates an item owned by the caller.
func (s *ItemService) CreateItem(ctx context.Context, caller *model.User, item *model.Item) (*model.Item, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	item.ID = uuid.NewString()
	item.UserID = caller.ID
	item.CreatedAt = time.Now().UTC()

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("item created", "item_id", item.ID, "owner", caller.ID)
	return item, nil
}

// GetItem retrieves a single item.
func (s *ItemService) GetItem(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// ListItems returns items newest first, paged by skip/first.
func (s *ItemService) ListItems(ctx context.Context, skip, first int) ([]model.Item, error) {
	return s.items.List(ctx, skip, first)
}

// CountItems returns the total item count.
func (s *ItemService) CountItems(ctx context.Context) (int, error) {
	return s.items.Count(ctx)
}

// UpdateItem applies an update to an item. The item ID and owner are never
// part of the update payload. The caller must be the owner or hold
// ADMIN/ITEMUPDATE.
func (s *ItemService) UpdateItem(ctx context.Context, caller *model.User, id string, upd model.ItemUpdate) (*model.Item, error) {
	item, err := s.requireItemAccess(ctx, caller, id, model.PermissionItemUpdate)
	if err != nil {
		return nil, err
	}

	if err := s.items.Update(ctx, item.ID, upd); err != nil {
		return nil, err
	}

	updated, err := s.items.GetByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteItem removes an item. The caller must be the owner or hold
// ADMIN/ITEMDELETE. Returns the deleted item.
func (s *ItemService) DeleteItem(ctx context.Context, caller *model.User, id string) (*model.Item, error) {
	item, err := s.requireItemAccess(ctx, caller, id, model.PermissionItemDelete)
	if err != nil {
		return nil, err
	}

	if err := s.items.Delete(ctx, item.ID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	s.logger.Info("item deleted", "item_id", item.ID, "by", caller.ID)
	return item, nil
}

// requireItemAccess loads the item and checks the caller may mutate it:
// the owner always may, anyone else needs the given permission (or ADMIN).
func (s *ItemService) requireItemAccess(ctx context.Context, caller *model.User, id, permission string) (*model.Item, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if item.UserID != caller.ID {
		if err := CheckPermission(caller, permission); err != nil {
			return nil, err
		}
	}
	return item, nil
}
