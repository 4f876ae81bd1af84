package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/verdantea/teahouse-web/apiclient"
	"github.com/verdantea/teahouse-web/models"
)

type TableService struct {
	client *apiclient.Client
}

func NewTableService(client *apiclient.Client) *TableService {
	return &TableService{client: client}
}

func (s *TableService) GetAll(ctx context.Context) apiclient.Response[[]models.CafeTable] {
	return apiclient.Get[[]models.CafeTable](ctx, s.client, "/api/cafetables")
}

func (s *TableService) GetByID(ctx context.Context, id uint) apiclient.Response[models.CafeTable] {
	return apiclient.Get[models.CafeTable](ctx, s.client, fmt.Sprintf("/api/cafetables/%d", id))
}

// GetAvailable asks the backend for tables with sufficient capacity and no
// conflicting reservation in the slot. The filtering is entirely
// server-side; the result is treated as an opaque list.
func (s *TableService) GetAvailable(ctx context.Context, dateTime time.Time, numberOfGuests int) apiclient.Response[[]models.CafeTable] {
	q := url.Values{}
	q.Set("dateTime", dateTime.Format(time.RFC3339))
	q.Set("numberOfGuests", fmt.Sprintf("%d", numberOfGuests))
	return apiclient.Get[[]models.CafeTable](ctx, s.client, "/api/cafetables/available?"+q.Encode())
}

func (s *TableService) Create(ctx context.Context, dto models.CreateCafeTable) apiclient.Response[models.CafeTable] {
	return apiclient.Post[models.CafeTable](ctx, s.client, "/api/cafetables", dto)
}

func (s *TableService) Update(ctx context.Context, id uint, dto models.CreateCafeTable) apiclient.Response[models.CafeTable] {
	return apiclient.Put[models.CafeTable](ctx, s.client, fmt.Sprintf("/api/cafetables/%d", id), dto)
}

func (s *TableService) Delete(ctx context.Context, id uint) apiclient.Response[struct{}] {
	return apiclient.Delete[struct{}](ctx, s.client, fmt.Sprintf("/api/cafetables/%d", id))
}
