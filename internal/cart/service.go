package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
	"github.com/sparkvibe/sparkvibe-cli/internal/ports"
)

const cartKey = "cart"

// Service owns the shopping cart. Items are keyed by product id; adding an
// already-present product increments its quantity. Every mutation is
// persisted before it is acknowledged.
type Service struct {
	store  ports.BlobStore
	logger *zap.Logger

	mu sync.Mutex
}

func NewService(store ports.BlobStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{store: store, logger: logger}
}

func (s *Service) Add(ctx context.Context, product domain.Product, quantity int) error {
	if !product.InStock {
		return domain.ErrOutOfStock
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	found := false
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.CartItem{Product: product, Quantity: quantity})
	}

	return s.save(ctx, items)
}

func (s *Service) Remove(ctx context.Context, id domain.ProductID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	kept := items[:0]
	for _, item := range items {
		if item.Product.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return domain.ErrProductNotFound
	}

	return s.save(ctx, kept)
}

// SetQuantity replaces the quantity of a cart entry. Zero or negative
// removes the entry.
func (s *Service) SetQuantity(ctx context.Context, id domain.ProductID, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	for i := range items {
		if items[i].Product.ID == id {
			items[i].Quantity = quantity
			return s.save(ctx, items)
		}
	}

	return domain.ErrProductNotFound
}

func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(ctx, cartKey); err != nil {
		return fmt.Errorf("clear cart record: %w", err)
	}

	return nil
}

func (s *Service) Items(ctx context.Context) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// load treats an absent or malformed cart record as an empty cart, the same
// degradation policy the session restore applies.
func (s *Service) load(ctx context.Context) []domain.CartItem {
	raw, err := s.store.Get(ctx, cartKey)
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			s.logger.Warn("load cart record", zap.Error(err))
		}
		return nil
	}

	items, err := decodeCart(raw)
	if err != nil {
		s.logger.Warn("discarding malformed cart record", zap.Error(err))
		return nil
	}

	return items
}

func (s *Service) save(ctx context.Context, items []domain.CartItem) error {
	encoded, err := encodeCart(items)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, cartKey, encoded); err != nil {
		return fmt.Errorf("store cart record: %w", err)
	}

	return nil
}
