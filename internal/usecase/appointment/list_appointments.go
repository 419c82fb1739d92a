package appointment

import (
	"context"
	"time"

	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/dto"
	"github.com/groomly/salon-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(repo domain.Repository, loc *time.Location) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  loc,
	}
}

// ByDate lists a professional's agenda for a single day.
func (uc *ListAppointments) ByDate(
	ctx context.Context,
	professionalID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		uc.loc,
	)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, professionalID, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

// ByMonth lists a professional's agenda for a calendar month.
func (uc *ListAppointments) ByMonth(
	ctx context.Context,
	professionalID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, professionalID, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

// ForClient lists a client's own bookings, newest first.
func (uc *ListAppointments) ForClient(
	ctx context.Context,
	clientID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.PublicID,
			Date:        ap.Date,
			Time:        ap.Time,
			StartsAt:    ap.StartsAt,
			EndsAt:      ap.EndsAt,
			Status:      ap.Status,
			ClientName:  ap.Client.Name,
			ProName:     ap.Professional.Name,
			ServiceName: ap.ServiceName,
			TotalPrice:  ap.TotalPrice,
		})
	}
	return out
}
