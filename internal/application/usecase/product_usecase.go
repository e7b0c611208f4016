// internal/application/usecase/product_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/common"
	productdom "storefront/internal/domain/product"
)

var ErrProductInvalidArgument = errors.New("product_usecase: invalid argument")

// ProductCreateInput is the "add product" form.
type ProductCreateInput struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
}

// ProductPatch changes only the non-nil fields.
type ProductPatch struct {
	Name     *string          `json:"name,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Stock    *int             `json:"stock,omitempty"`
	Image    *string          `json:"image,omitempty"`
	Category *string          `json:"category,omitempty"`
}

func (p ProductPatch) apply(dst *productdom.Product) error {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Stock != nil {
		if *p.Stock < 0 {
			return productdom.ErrInvalidProduct
		}
		dst.Stock = *p.Stock
	}
	if p.Image != nil {
		dst.Image = *p.Image
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	// keep the staged status consistent with staged stock
	dst.Status = productdom.DeriveStatus(dst.Stock)
	return nil
}

// ProductUsecase is the admin products tab.
type ProductUsecase struct {
	repo productdom.Repository
	flow draftFlow[int, productdom.Product]
}

func NewProductUsecase(repo productdom.Repository) *ProductUsecase {
	uc := &ProductUsecase{repo: repo}
	uc.flow = draftFlow[int, productdom.Product]{
		drafts: NewDrafts[int, productdom.Product](),
		load:   repo.GetByID,
		commit: repo.Update,
		finalize: func(p *productdom.Product) error {
			p.Normalize()
			return p.Validate()
		},
	}
	return uc
}

func (uc *ProductUsecase) List(ctx context.Context, q, status string) ([]productdom.Product, error) {
	return uc.repo.List(ctx, common.Filter{SearchQuery: q, Status: strings.TrimSpace(status)})
}

func (uc *ProductUsecase) Get(ctx context.Context, id int) (productdom.Product, error) {
	if id <= 0 {
		return productdom.Product{}, ErrProductInvalidArgument
	}
	return uc.repo.GetByID(ctx, id)
}

// Create validates the form, derives status, assigns max+1 and appends.
func (uc *ProductUsecase) Create(ctx context.Context, in ProductCreateInput) (productdom.Product, error) {
	p, err := productdom.New(in.Name, in.Price, in.Stock, in.Image, in.Category)
	if err != nil {
		return productdom.Product{}, err
	}
	return uc.repo.Create(ctx, p)
}

// Update applies patch and saves in one step.
func (uc *ProductUsecase) Update(ctx context.Context, id int, patch ProductPatch) (productdom.Product, error) {
	p, err := uc.Get(ctx, id)
	if err != nil {
		return productdom.Product{}, err
	}
	if err := patch.apply(&p); err != nil {
		return productdom.Product{}, err
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return productdom.Product{}, err
	}
	return uc.repo.Update(ctx, p)
}

// UpdateStock sets stock and re-derives status.
func (uc *ProductUsecase) UpdateStock(ctx context.Context, id, stock int) (productdom.Product, error) {
	p, err := uc.Get(ctx, id)
	if err != nil {
		return productdom.Product{}, err
	}
	if err := p.SetStock(stock); err != nil {
		return productdom.Product{}, err
	}
	return uc.repo.Update(ctx, p)
}

func (uc *ProductUsecase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrProductInvalidArgument
	}
	uc.flow.drafts.Discard(id)
	return uc.repo.Delete(ctx, id)
}

// ------------------------------------------------------------
// staged edits
// ------------------------------------------------------------

func (uc *ProductUsecase) BeginEdit(ctx context.Context, id int) (productdom.Product, error) {
	return uc.flow.begin(ctx, id)
}

func (uc *ProductUsecase) Draft(id int) (productdom.Product, error) {
	return uc.flow.get(id)
}

func (uc *ProductUsecase) EditDraft(id int, patch ProductPatch) (productdom.Product, error) {
	return uc.flow.edit(id, patch.apply)
}

func (uc *ProductUsecase) SaveDraft(ctx context.Context, id int) (productdom.Product, error) {
	return uc.flow.save(ctx, id)
}

func (uc *ProductUsecase) CancelEdit(id int) error {
	return uc.flow.cancel(id)
}
