package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/urbanlaundrydahej/laundry-app/internal/apperr"
	"github.com/urbanlaundrydahej/laundry-app/internal/logx"
)

// Item is a purchasable service. Price is in minor currency units.
// Removing an item only clears Active; past orders keep their own copy.
type Item struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Active bool   `json:"-"`
}

type Repository interface {
	Add(ctx context.Context, name string, price int64) (int64, error)
	// Deactivate returns apperr.ErrNotFound for an unknown id.
	Deactivate(ctx context.Context, id int64) error
	// Get returns the item whether or not it is active.
	Get(ctx context.Context, id int64) (Item, error)
	ListActive(ctx context.Context) ([]Item, error)
}

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: logx.OrNop(log).Named("catalog")}
}

func (s *Service) AddItem(ctx context.Context, name string, price int64) (Item, error) {
	name = strings.TrimSpace(name)
	var errs apperr.ValidationErrors
	errs.Required("name", name)
	if price <= 0 {
		errs.Add("price", "must be > 0")
	}
	if err := errs.OrNil(); err != nil {
		return Item{}, err
	}

	id, err := s.repo.Add(ctx, name, price)
	if err != nil {
		return Item{}, fmt.Errorf("add item: %w", err)
	}
	s.log.Info("item added", zap.Int64("item_id", id), zap.String("name", name), zap.Int64("price", price))
	return Item{ID: id, Name: name, Price: price, Active: true}, nil
}

func (s *Service) RemoveItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Invalid("id", "must be > 0")
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("remove item %d: %w", id, err)
	}
	s.log.Info("item removed", zap.Int64("item_id", id))
	return nil
}

func (s *Service) GetItem(ctx context.Context, id int64) (Item, error) {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		return Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return it, nil
}

func (s *Service) ListActiveItems(ctx context.Context) ([]Item, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}
