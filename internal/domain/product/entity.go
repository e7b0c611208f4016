// internal/domain/product/entity.go
package product

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/common"
)

var (
	ErrInvalidProduct = errors.New("product: invalid")
	ErrNotFound       = errors.New("product: not found")
)

type Status string

const (
	StatusInStock    Status = "In Stock"
	StatusOutOfStock Status = "Out of Stock"
)

// DefaultImage is used when a product is created without one.
const DefaultImage = "📦"

// Product is an admin inventory record.
// Status is derived from Stock and never set directly.
type Product struct {
	ID       int             `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Price    decimal.Decimal `json:"price" yaml:"price"`
	Stock    int             `json:"stock" yaml:"stock"`
	Status   Status          `json:"status" yaml:"-"`
	Image    string          `json:"image" yaml:"image"`
	Category string          `json:"category" yaml:"category"`
}

// New builds a product ready for insertion. ID is assigned by the repository.
func New(name string, price decimal.Decimal, stock int, image, category string) (Product, error) {
	p := Product{
		Name:     name,
		Price:    price,
		Stock:    stock,
		Image:    image,
		Category: category,
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// DeriveStatus maps stock to status.
func DeriveStatus(stock int) Status {
	if stock > 0 {
		return StatusInStock
	}
	return StatusOutOfStock
}

// Normalize trims text fields and re-derives Status.
func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	p.Image = strings.TrimSpace(p.Image)
	if p.Image == "" {
		p.Image = DefaultImage
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	p.Status = DeriveStatus(p.Stock)
}

// Validate requires name, a positive price and category.
func (p Product) Validate() error {
	if p.Name == "" || p.Category == "" || !p.Price.IsPositive() || p.Stock < 0 {
		return ErrInvalidProduct
	}
	return nil
}

// SetStock updates stock and status together.
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return ErrInvalidProduct
	}
	p.Stock = stock
	p.Status = DeriveStatus(stock)
	return nil
}

// Matches applies the admin list filter (name, category, id).
func (p Product) Matches(f common.Filter) bool {
	return common.MatchesStatus(f.Status, string(p.Status)) &&
		common.MatchesQuery(f.SearchQuery, p.Name, p.Category, strconv.Itoa(p.ID))
}
