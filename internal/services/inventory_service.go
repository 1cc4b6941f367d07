package services

import (
	"database/sql"
	"errors"
	"fmt"

	"vintedmanager/internal/domain"
	applog "vintedmanager/internal/log"
	"vintedmanager/internal/repos"
	"vintedmanager/internal/validate"
)

// ProductForm is a product as typed by the user, before coercion.
type ProductForm struct {
	Type           string
	Brand          string
	Size           string
	Color          string
	Condition      string
	Description    string
	PurchaseDate   string
	PurchasePrice  string
	EstimatedValue string
}

// Parse coerces the form. The first field that fails is reported as a
// *domain.InputError.
func (f ProductForm) Parse() (domain.NewProduct, error) {
	purchased, err := validate.Date(f.PurchaseDate)
	if err != nil {
		return domain.NewProduct{}, &domain.InputError{Field: "purchase_date", Value: f.PurchaseDate, Err: err}
	}
	price, err := validate.Amount(f.PurchasePrice)
	if err != nil {
		return domain.NewProduct{}, &domain.InputError{Field: "purchase_price", Value: f.PurchasePrice, Err: err}
	}
	estimate, err := validate.Amount(f.EstimatedValue)
	if err != nil {
		return domain.NewProduct{}, &domain.InputError{Field: "estimated_value", Value: f.EstimatedValue, Err: err}
	}
	return domain.NewProduct{
		Type:           f.Type,
		Brand:          f.Brand,
		Size:           f.Size,
		Color:          f.Color,
		Condition:      f.Condition,
		Description:    f.Description,
		PurchasePrice:  price,
		PurchaseDate:   purchased,
		EstimatedValue: estimate,
	}, nil
}

type InventoryService struct {
	Prods *repos.ProductRepo
}

func NewInventoryService(prods *repos.ProductRepo) *InventoryService {
	return &InventoryService{Prods: prods}
}

// Create coerces and stores a new product, returning its id.
func (s *InventoryService) Create(form ProductForm) (int64, error) {
	p, err := form.Parse()
	if err != nil {
		return 0, err
	}
	return s.Add(p)
}

func (s *InventoryService) Add(p domain.NewProduct) (int64, error) {
	id, err := s.Prods.Create(p)
	if err != nil {
		applog.Error("product.create.fail", err, nil)
		return 0, fmt.Errorf("create product: %w", err)
	}
	applog.Audit("product.create", map[string]any{"id": id, "type": p.Type, "brand": p.Brand, "purchase_price": p.PurchasePrice})
	return id, nil
}

// Get returns *domain.NotFoundError for an unknown id.
func (s *InventoryService) Get(id int64) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, &domain.NotFoundError{ID: id}
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

// Update overwrites the single field named by c.
func (s *InventoryService) Update(id int64, c domain.Change) error {
	if !c.Valid() {
		return domain.ErrUnknownField
	}
	found, err := s.Prods.Update(id, c)
	if err != nil {
		applog.Error("product.update.fail", err, map[string]any{"id": id, "field": c.Field().Column()})
		return fmt.Errorf("update product %d: %w", id, err)
	}
	if !found {
		applog.Warn("product.update.missing", map[string]any{"id": id, "field": c.Field().Column()})
		return &domain.NotFoundError{ID: id}
	}
	applog.Audit("product.update", map[string]any{"id": id, "field": c.Field().Column(), "value": c.Value()})
	return nil
}

// UpdateFromInput coerces raw for field f, then updates. A coercion
// failure is returned as-is; nothing is written.
func (s *InventoryService) UpdateFromInput(id int64, f domain.Field, raw string) error {
	c, err := validate.Change(f, raw)
	if err != nil {
		return err
	}
	return s.Update(id, c)
}

// Delete is a no-op for unknown ids.
func (s *InventoryService) Delete(id int64) error {
	if err := s.Prods.Delete(id); err != nil {
		applog.Error("product.delete.fail", err, map[string]any{"id": id})
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	applog.Audit("product.delete", map[string]any{"id": id})
	return nil
}

func (s *InventoryService) ListInStock() ([]domain.Product, error) {
	return s.Prods.ListInStock()
}

func (s *InventoryService) ListSold(period *domain.Period) ([]domain.Product, error) {
	return s.Prods.ListSold(period)
}
