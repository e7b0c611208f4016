// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/common"
	orderdom "storefront/internal/domain/order"
)

var ErrOrderInvalidArgument = errors.New("order_usecase: invalid argument")

type OrderCreateInput struct {
	CustomerName  string               `json:"customerName"`
	CustomerEmail string               `json:"customerEmail"`
	Date          string               `json:"date"`
	Total         decimal.Decimal      `json:"total"`
	Status        string               `json:"status"`
	Items         []orderdom.OrderItem `json:"items"`
}

type OrderPatch struct {
	CustomerName  *string               `json:"customerName,omitempty"`
	CustomerEmail *string               `json:"customerEmail,omitempty"`
	Date          *string               `json:"date,omitempty"`
	Total         *decimal.Decimal      `json:"total,omitempty"`
	Status        *string               `json:"status,omitempty"`
	Items         *[]orderdom.OrderItem `json:"items,omitempty"`
}

func (p OrderPatch) apply(dst *orderdom.Order) error {
	if p.CustomerName != nil {
		dst.CustomerName = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		dst.CustomerEmail = *p.CustomerEmail
	}
	if p.Date != nil {
		dst.Date = *p.Date
	}
	if p.Total != nil {
		dst.Total = *p.Total
	}
	if p.Status != nil {
		st, err := orderdom.ParseStatus(*p.Status)
		if err != nil {
			return err
		}
		dst.Status = st
	}
	if p.Items != nil {
		dst.Items = append([]orderdom.OrderItem{}, (*p.Items)...)
	}
	return nil
}

// OrderUsecase is the admin orders tab.
type OrderUsecase struct {
	repo  orderdom.Repository
	clock Clock
	flow  draftFlow[string, orderdom.Order]
}

func NewOrderUsecase(repo orderdom.Repository) *OrderUsecase {
	return NewOrderUsecaseWithClock(repo, systemClock{})
}

func NewOrderUsecaseWithClock(repo orderdom.Repository, clock Clock) *OrderUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	uc := &OrderUsecase{repo: repo, clock: clock}
	uc.flow = draftFlow[string, orderdom.Order]{
		drafts:   NewDrafts[string, orderdom.Order](),
		load:     repo.GetByID,
		commit:   repo.Update,
		finalize: uc.finalize,
	}
	return uc
}

func (uc *OrderUsecase) today() string {
	return uc.clock.Now().Format(orderdom.DateLayout)
}

func (uc *OrderUsecase) finalize(o *orderdom.Order) error {
	o.Normalize(uc.today())
	return o.Validate()
}

func (uc *OrderUsecase) List(ctx context.Context, q, status string) ([]orderdom.Order, error) {
	return uc.repo.List(ctx, common.Filter{SearchQuery: q, Status: strings.TrimSpace(status)})
}

func (uc *OrderUsecase) Get(ctx context.Context, id string) (orderdom.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.Order{}, ErrOrderInvalidArgument
	}
	return uc.repo.GetByID(ctx, id)
}

// Create validates the form and prepends the order with the next ORD id.
func (uc *OrderUsecase) Create(ctx context.Context, in OrderCreateInput) (orderdom.Order, error) {
	o := orderdom.Order{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Date:          in.Date,
		Total:         in.Total,
		Items:         in.Items,
	}
	if strings.TrimSpace(in.Status) != "" {
		st, err := orderdom.ParseStatus(in.Status)
		if err != nil {
			return orderdom.Order{}, err
		}
		o.Status = st
	}
	if err := uc.finalize(&o); err != nil {
		return orderdom.Order{}, err
	}
	return uc.repo.Create(ctx, o)
}

func (uc *OrderUsecase) Update(ctx context.Context, id string, patch OrderPatch) (orderdom.Order, error) {
	o, err := uc.Get(ctx, id)
	if err != nil {
		return orderdom.Order{}, err
	}
	if err := patch.apply(&o); err != nil {
		return orderdom.Order{}, err
	}
	if err := uc.finalize(&o); err != nil {
		return orderdom.Order{}, err
	}
	return uc.repo.Update(ctx, o)
}

// UpdateStatus changes only the status.
func (uc *OrderUsecase) UpdateStatus(ctx context.Context, id, status string) (orderdom.Order, error) {
	st, err := orderdom.ParseStatus(status)
	if err != nil {
		return orderdom.Order{}, err
	}
	o, err := uc.Get(ctx, id)
	if err != nil {
		return orderdom.Order{}, err
	}
	o.Status = st
	return uc.repo.Update(ctx, o)
}

func (uc *OrderUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrOrderInvalidArgument
	}
	uc.flow.drafts.Discard(id)
	return uc.repo.Delete(ctx, id)
}

func (uc *OrderUsecase) BeginEdit(ctx context.Context, id string) (orderdom.Order, error) {
	return uc.flow.begin(ctx, strings.TrimSpace(id))
}

func (uc *OrderUsecase) Draft(id string) (orderdom.Order, error) {
	return uc.flow.get(strings.TrimSpace(id))
}

func (uc *OrderUsecase) EditDraft(id string, patch OrderPatch) (orderdom.Order, error) {
	return uc.flow.edit(strings.TrimSpace(id), patch.apply)
}

func (uc *OrderUsecase) SaveDraft(ctx context.Context, id string) (orderdom.Order, error) {
	return uc.flow.save(ctx, strings.TrimSpace(id))
}

func (uc *OrderUsecase) CancelEdit(id string) error {
	return uc.flow.cancel(strings.TrimSpace(id))
}
