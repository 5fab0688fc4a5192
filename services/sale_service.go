package services

import (
	"context"

	"guest-admin/models"
	"guest-admin/repositories"
	"guest-admin/validation"
)

type SaleService struct {
	childService[models.Sale]
}

func NewSaleService(store repositories.Store) *SaleService {
	return &SaleService{childService[models.Sale]{
		name:      "sales",
		repo:      store.Sales,
		guests:    store.Guests,
		validate:  validation.ValidateSale,
		normalize: func(s *models.Sale) { normalizeOptionalDate(&s.PurchaseDate) },
		orderBy:   "created_at",
	}}
}

func (s *SaleService) ListByGuest(ctx context.Context, guestID string) ([]models.Sale, error) {
	return s.listByGuest(ctx, guestID)
}

func (s *SaleService) Get(ctx context.Context, id string) (*models.Sale, error) {
	return s.get(ctx, id)
}

func (s *SaleService) Create(ctx context.Context, guestID string, sale *models.Sale) error {
	sale.ID = ""
	sale.GuestID = guestID
	return s.create(ctx, guestID, sale)
}

func (s *SaleService) Update(ctx context.Context, id string, in models.Sale) (*models.Sale, error) {
	return s.update(ctx, id, func(row *models.Sale) {
		in.ID, in.GuestID, in.CreatedAt = row.ID, row.GuestID, row.CreatedAt
		if in.AppointmentID == nil {
			in.AppointmentID = row.AppointmentID
		}
		*row = in
	})
}

func (s *SaleService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
