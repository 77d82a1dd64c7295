package service

import (
	"context"
	"log/slog"

	"github.com/gravitrone/salesdesk/internal/form"
	"github.com/gravitrone/salesdesk/internal/models"
	"github.com/gravitrone/salesdesk/internal/storage"
)

var _ form.Service[models.Seller] = (*SellerService)(nil)

// SellerService saves and lists sellers.
type SellerService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewSellerService creates a SellerService over store.
func NewSellerService(store storage.Store, logger *slog.Logger) *SellerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SellerService{store: store, logger: logger}
}

// SaveOrUpdate inserts sl when it has no ID and updates it otherwise.
func (s *SellerService) SaveOrUpdate(ctx context.Context, sl *models.Seller) error {
	if sl.ID == nil {
		if err := s.store.InsertSeller(ctx, sl); err != nil {
			s.logger.Error("insert seller failed", "name", sl.Name, "error", err)
			return persistenceError("save seller", err)
		}
		s.logger.Info("seller created", "id", *sl.ID)
		return nil
	}
	if err := s.store.UpdateSeller(ctx, sl); err != nil {
		s.logger.Error("update seller failed", "id", *sl.ID, "error", err)
		return persistenceError("update seller", err)
	}
	s.logger.Info("seller updated", "id", *sl.ID)
	return nil
}

// FindAll returns every seller ordered by name.
func (s *SellerService) FindAll(ctx context.Context) ([]models.Seller, error) {
	items, err := s.store.ListSellers(ctx)
	if err != nil {
		return nil, persistenceError("list sellers", err)
	}
	return items, nil
}

// Remove deletes the seller with the given ID.
func (s *SellerService) Remove(ctx context.Context, id int) error {
	if err := s.store.DeleteSeller(ctx, id); err != nil {
		s.logger.Error("delete seller failed", "id", id, "error", err)
		return persistenceError("remove seller", err)
	}
	s.logger.Info("seller removed", "id", id)
	return nil
}
