// Package services holds the typed façades over the backend REST API,
// one per resource. They are stateless; every call is a fresh round trip.
package services

import (
	"context"
	"fmt"

	"github.com/verdantea/teahouse-web/apiclient"
	"github.com/verdantea/teahouse-web/models"
)

type MenuService struct {
	client *apiclient.Client
}

func NewMenuService(client *apiclient.Client) *MenuService {
	return &MenuService{client: client}
}

func (s *MenuService) GetAll(ctx context.Context) apiclient.Response[[]models.MenuItem] {
	return apiclient.Get[[]models.MenuItem](ctx, s.client, "/api/menuitems")
}

func (s *MenuService) GetPopular(ctx context.Context) apiclient.Response[[]models.MenuItem] {
	return apiclient.Get[[]models.MenuItem](ctx, s.client, "/api/menuitems/popular")
}

func (s *MenuService) GetByID(ctx context.Context, id uint) apiclient.Response[models.MenuItem] {
	return apiclient.Get[models.MenuItem](ctx, s.client, fmt.Sprintf("/api/menuitems/%d", id))
}

func (s *MenuService) Create(ctx context.Context, dto models.CreateMenuItem) apiclient.Response[models.MenuItem] {
	return apiclient.Post[models.MenuItem](ctx, s.client, "/api/menuitems", dto)
}

func (s *MenuService) Update(ctx context.Context, id uint, dto models.CreateMenuItem) apiclient.Response[models.MenuItem] {
	return apiclient.Put[models.MenuItem](ctx, s.client, fmt.Sprintf("/api/menuitems/%d", id), dto)
}

func (s *MenuService) Delete(ctx context.Context, id uint) apiclient.Response[struct{}] {
	return apiclient.Delete[struct{}](ctx, s.client, fmt.Sprintf("/api/menuitems/%d", id))
}
