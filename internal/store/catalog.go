package store

import (
	"context"

	"github.com/diewo77/go-billing/internal/models"
)

// AddProduct appends a product and returns its id.
func (s *Store) AddProduct(ctx context.Context, in models.ProductInput) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.Product{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		TaxRate:     in.TaxRate,
		Unit:        in.Unit,
		CreatedAt:   s.now(),
	}
	s.state.Products = append(s.state.Products, p)
	return p.ID, s.persist(ctx, "add_product")
}

// UpdateProduct merges patch into the product with the given id.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.productIndex(id)
	if i < 0 {
		err := notFound("product", id)
		s.record("update_product", err)
		return err
	}
	patch.Apply(&s.state.Products[i])
	return s.persist(ctx, "update_product")
}

// DeleteProduct removes a product. Invoices keep their copies of its data.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.productIndex(id)
	if i < 0 {
		err := notFound("product", id)
		s.record("delete_product", err)
		return err
	}
	s.state.Products = append(s.state.Products[:i], s.state.Products[i+1:]...)
	return s.persist(ctx, "delete_product")
}

// Products returns all products in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product{}, s.state.Products...)
}

// Product returns one product by id.
func (s *Store) Product(id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.productIndex(id)
	if i < 0 {
		return models.Product{}, notFound("product", id)
	}
	return s.state.Products[i], nil
}

func (s *Store) productIndex(id string) int {
	for i := range s.state.Products {
		if s.state.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// AddClient appends a client and returns its id.
func (s *Store) AddClient(ctx context.Context, in models.ClientInput) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.Client{
		ID:          s.newID(),
		CompanyName: in.CompanyName,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		CreatedAt:   s.now(),
	}
	s.state.Clients = append(s.state.Clients, c)
	return c.ID, s.persist(ctx, "add_client")
}

// UpdateClient merges patch into the client with the given id.
func (s *Store) UpdateClient(ctx context.Context, id string, patch models.ClientPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.clientIndex(id)
	if i < 0 {
		err := notFound("client", id)
		s.record("update_client", err)
		return err
	}
	patch.Apply(&s.state.Clients[i])
	return s.persist(ctx, "update_client")
}

// DeleteClient removes a client. Invoices keep their copies of its data.
func (s *Store) DeleteClient(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.clientIndex(id)
	if i < 0 {
		err := notFound("client", id)
		s.record("delete_client", err)
		return err
	}
	s.state.Clients = append(s.state.Clients[:i], s.state.Clients[i+1:]...)
	return s.persist(ctx, "delete_client")
}

// Clients returns all clients in insertion order.
func (s *Store) Clients() []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Client{}, s.state.Clients...)
}

// Client returns one client by id.
func (s *Store) Client(id string) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.clientIndex(id)
	if i < 0 {
		return models.Client{}, notFound("client", id)
	}
	return s.state.Clients[i], nil
}

func (s *Store) clientIndex(id string) int {
	for i := range s.state.Clients {
		if s.state.Clients[i].ID == id {
			return i
		}
	}
	return -1
}
