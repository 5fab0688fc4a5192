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

const (
	defaultAppointmentTitle = "Presentation"
	defaultAppointmentTime  = "10:00"
)

type AppointmentService struct {
	childService[models.Appointment]
	sales repositories.Repository[models.Sale]
}

func NewAppointmentService(store repositories.Store) *AppointmentService {
	return &AppointmentService{
		childService: childService[models.Appointment]{
			name:      "appointments",
			repo:      store.Appointments,
			guests:    store.Guests,
			validate:  validation.ValidateAppointment,
			normalize: func(a *models.Appointment) { normalizeDate(&a.AppointmentDate) },
			orderBy:   "appointment_date",
		},
		sales: store.Sales,
	}
}

func (s *AppointmentService) ListByGuest(ctx context.Context, guestID string) ([]models.Appointment, error) {
	return s.listByGuest(ctx, guestID)
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return s.get(ctx, id)
}

// Create fills the scheduling form defaults before validating.
func (s *AppointmentService) Create(ctx context.Context, guestID string, a *models.Appointment) error {
	a.ID = ""
	a.GuestID = guestID
	if a.Title == "" {
		a.Title = defaultAppointmentTitle
	}
	if a.AppointmentTime == "" {
		a.AppointmentTime = defaultAppointmentTime
	}
	if a.DurationMinutes == 0 {
		a.DurationMinutes = 60
	}
	if a.Status == "" {
		a.Status = models.AppointmentScheduled
	}
	return s.create(ctx, guestID, a)
}

// Update replaces the editable fields. A status change is mirrored onto
// the guest's sale, see syncSale.
func (s *AppointmentService) Update(ctx context.Context, id string, in models.Appointment) (*models.Appointment, error) {
	return s.apply(ctx, id, func(row *models.Appointment) {
		in.ID, in.GuestID, in.CreatedAt = row.ID, row.GuestID, row.CreatedAt
		if in.Status == "" {
			in.Status = row.Status
		}
		*row = in
	})
}

// Patch applies a calendar edit: title, date, time and status.
func (s *AppointmentService) Patch(ctx context.Context, id string, p ItemPatch) (*models.Appointment, error) {
	return s.apply(ctx, id, func(row *models.Appointment) {
		if p.Title != nil {
			row.Title = *p.Title
		}
		if p.Date != nil {
			row.AppointmentDate = *p.Date
		}
		if p.Time != nil {
			row.AppointmentTime = *p.Time
		}
		if p.Status != nil {
			row.Status = *p.Status
		}
	})
}

func (s *AppointmentService) Cancel(ctx context.Context, id string) (*models.Appointment, error) {
	status := models.AppointmentCanceled
	return s.Patch(ctx, id, ItemPatch{Status: &status})
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

func (s *AppointmentService) apply(ctx context.Context, id string, change func(*models.Appointment)) (*models.Appointment, error) {
	var previous string
	row, err := s.update(ctx, id, func(row *models.Appointment) {
		previous = row.Status
		change(row)
	})
	if err != nil {
		return nil, err
	}
	if row.Status == previous {
		return row, nil
	}

	if err := s.syncSale(ctx, row); err != nil {
		config.Log.Error("sale sync failed",
			zap.String("appointment_id", row.ID),
			zap.String("guest_id", row.GuestID),
			zap.String("status", row.Status),
			zap.Error(err))
		return row, fmt.Errorf("%w: %v", ErrSaleSyncFailed, err)
	}
	return row, nil
}

// syncSale keeps attended_presentation on the guest's sales in step with
// the appointment. Completing an appointment marks them (creating one if
// the guest has none); any other status clears the flag on existing sales
// and never creates one. The writes are not transactional.
func (s *AppointmentService) syncSale(ctx context.Context, a *models.Appointment) error {
	sales, err := s.sales.Find(ctx, repositories.Query{
		Select:  []string{"id"},
		Filters: []repositories.Filter{repositories.Eq("guest_id", a.GuestID)},
	})
	if err != nil {
		return fmt.Errorf("find sales: %w", err)
	}
	completed := a.Status == models.AppointmentCompleted

	if len(sales) == 0 {
		if !completed {
			return nil
		}
		appointmentID := a.ID
		if err := s.sales.Create(ctx, &models.Sale{
			GuestID:              a.GuestID,
			AppointmentID:        &appointmentID,
			AttendedPresentation: true,
		}); err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}
		return nil
	}

	for _, sale := range sales {
		if err := s.sales.UpdateFields(ctx, sale.ID, map[string]interface{}{
			"attended_presentation": completed,
		}); err != nil {
			return fmt.Errorf("update sale %s: %w", sale.ID, err)
		}
	}
	return nil
}
