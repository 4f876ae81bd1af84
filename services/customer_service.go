package services

import (
	"context"
	"fmt"

	"github.com/verdantea/teahouse-web/apiclient"
	"github.com/verdantea/teahouse-web/models"
)

type CustomerService struct {
	client *apiclient.Client
}

func NewCustomerService(client *apiclient.Client) *CustomerService {
	return &CustomerService{client: client}
}

func (s *CustomerService) GetAll(ctx context.Context) apiclient.Response[[]models.Customer] {
	return apiclient.Get[[]models.Customer](ctx, s.client, "/api/customers")
}

func (s *CustomerService) GetByID(ctx context.Context, id uint) apiclient.Response[models.Customer] {
	return apiclient.Get[models.Customer](ctx, s.client, fmt.Sprintf("/api/customers/%d", id))
}

func (s *CustomerService) Create(ctx context.Context, dto models.CreateCustomer) apiclient.Response[models.Customer] {
	return apiclient.Post[models.Customer](ctx, s.client, "/api/customers", dto)
}

func (s *CustomerService) Update(ctx context.Context, id uint, dto models.CreateCustomer) apiclient.Response[models.Customer] {
	return apiclient.Put[models.Customer](ctx, s.client, fmt.Sprintf("/api/customers/%d", id), dto)
}

func (s *CustomerService) Delete(ctx context.Context, id uint) apiclient.Response[struct{}] {
	return apiclient.Delete[struct{}](ctx, s.client, fmt.Sprintf("/api/customers/%d", id))
}
