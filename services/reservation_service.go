package services

import (
	"context"
	"fmt"

	"github.com/verdantea/teahouse-web/apiclient"
	"github.com/verdantea/teahouse-web/models"
)

type ReservationService struct {
	client *apiclient.Client
}

func NewReservationService(client *apiclient.Client) *ReservationService {
	return &ReservationService{client: client}
}

func (s *ReservationService) GetAll(ctx context.Context) apiclient.Response[[]models.Reservation] {
	return apiclient.Get[[]models.Reservation](ctx, s.client, "/api/reservations")
}

func (s *ReservationService) GetByID(ctx context.Context, id uint) apiclient.Response[models.Reservation] {
	return apiclient.Get[models.Reservation](ctx, s.client, fmt.Sprintf("/api/reservations/%d", id))
}

func (s *ReservationService) Create(ctx context.Context, dto models.CreateReservation) apiclient.Response[models.Reservation] {
	return apiclient.Post[models.Reservation](ctx, s.client, "/api/reservations", dto)
}

func (s *ReservationService) Update(ctx context.Context, id uint, dto models.CreateReservation) apiclient.Response[models.Reservation] {
	return apiclient.Put[models.Reservation](ctx, s.client, fmt.Sprintf("/api/reservations/%d", id), dto)
}

func (s *ReservationService) Delete(ctx context.Context, id uint) apiclient.Response[struct{}] {
	return apiclient.Delete[struct{}](ctx, s.client, fmt.Sprintf("/api/reservations/%d", id))
}
