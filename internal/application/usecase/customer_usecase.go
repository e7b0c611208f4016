// internal/application/usecase/customer_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/common"
	customerdom "storefront/internal/domain/customer"
	orderdom "storefront/internal/domain/order"
)

var ErrCustomerInvalidArgument = errors.New("customer_usecase: invalid argument")

type CustomerCreateInput struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	JoinedDate  string          `json:"joinedDate"`
	TotalOrders int             `json:"totalOrders"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
	Status      string          `json:"status"`
	Address     string          `json:"address"`
}

type CustomerPatch struct {
	Name        *string          `json:"name,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	JoinedDate  *string          `json:"joinedDate,omitempty"`
	TotalOrders *int             `json:"totalOrders,omitempty"`
	TotalSpent  *decimal.Decimal `json:"totalSpent,omitempty"`
	Status      *string          `json:"status,omitempty"`
	Address     *string          `json:"address,omitempty"`
}

func (p CustomerPatch) apply(dst *customerdom.Customer) error {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Email != nil {
		dst.Email = *p.Email
	}
	if p.Phone != nil {
		dst.Phone = *p.Phone
	}
	if p.JoinedDate != nil {
		dst.JoinedDate = *p.JoinedDate
	}
	if p.TotalOrders != nil {
		dst.TotalOrders = *p.TotalOrders
	}
	if p.TotalSpent != nil {
		dst.TotalSpent = *p.TotalSpent
	}
	if p.Status != nil {
		st := customerdom.Status(strings.TrimSpace(*p.Status))
		if !st.Valid() {
			return customerdom.ErrInvalidStatus
		}
		dst.Status = st
	}
	if p.Address != nil {
		dst.Address = *p.Address
	}
	return nil
}

// CustomerUsecase is the admin customers tab.
type CustomerUsecase struct {
	repo  customerdom.Repository
	clock Clock
	flow  draftFlow[int, customerdom.Customer]
}

func NewCustomerUsecase(repo customerdom.Repository) *CustomerUsecase {
	return NewCustomerUsecaseWithClock(repo, systemClock{})
}

func NewCustomerUsecaseWithClock(repo customerdom.Repository, clock Clock) *CustomerUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	uc := &CustomerUsecase{repo: repo, clock: clock}
	uc.flow = draftFlow[int, customerdom.Customer]{
		drafts:   NewDrafts[int, customerdom.Customer](),
		load:     repo.GetByID,
		commit:   repo.Update,
		finalize: uc.finalize,
	}
	return uc
}

func (uc *CustomerUsecase) finalize(c *customerdom.Customer) error {
	c.Normalize(uc.clock.Now().Format(orderdom.DateLayout))
	return c.Validate()
}

func (uc *CustomerUsecase) List(ctx context.Context, q, status string) ([]customerdom.Customer, error) {
	return uc.repo.List(ctx, common.Filter{SearchQuery: q, Status: strings.TrimSpace(status)})
}

func (uc *CustomerUsecase) Get(ctx context.Context, id int) (customerdom.Customer, error) {
	if id <= 0 {
		return customerdom.Customer{}, ErrCustomerInvalidArgument
	}
	return uc.repo.GetByID(ctx, id)
}

// Create validates the form and prepends the customer with id max+1.
func (uc *CustomerUsecase) Create(ctx context.Context, in CustomerCreateInput) (customerdom.Customer, error) {
	c := customerdom.Customer{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		JoinedDate:  in.JoinedDate,
		TotalOrders: in.TotalOrders,
		TotalSpent:  in.TotalSpent,
		Status:      customerdom.Status(strings.TrimSpace(in.Status)),
		Address:     in.Address,
	}
	if err := uc.finalize(&c); err != nil {
		return customerdom.Customer{}, err
	}
	return uc.repo.Create(ctx, c)
}

func (uc *CustomerUsecase) Update(ctx context.Context, id int, patch CustomerPatch) (customerdom.Customer, error) {
	c, err := uc.Get(ctx, id)
	if err != nil {
		return customerdom.Customer{}, err
	}
	if err := patch.apply(&c); err != nil {
		return customerdom.Customer{}, err
	}
	if err := uc.finalize(&c); err != nil {
		return customerdom.Customer{}, err
	}
	return uc.repo.Update(ctx, c)
}

// ToggleStatus flips Active and Inactive.
func (uc *CustomerUsecase) ToggleStatus(ctx context.Context, id int) (customerdom.Customer, error) {
	c, err := uc.Get(ctx, id)
	if err != nil {
		return customerdom.Customer{}, err
	}
	c.Status = c.Status.Toggle()
	return uc.repo.Update(ctx, c)
}

func (uc *CustomerUsecase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrCustomerInvalidArgument
	}
	uc.flow.drafts.Discard(id)
	return uc.repo.Delete(ctx, id)
}

func (uc *CustomerUsecase) BeginEdit(ctx context.Context, id int) (customerdom.Customer, error) {
	return uc.flow.begin(ctx, id)
}

func (uc *CustomerUsecase) Draft(id int) (customerdom.Customer, error) {
	return uc.flow.get(id)
}

func (uc *CustomerUsecase) EditDraft(id int, patch CustomerPatch) (customerdom.Customer, error) {
	return uc.flow.edit(id, patch.apply)
}

func (uc *CustomerUsecase) SaveDraft(ctx context.Context, id int) (customerdom.Customer, error) {
	return uc.flow.save(ctx, id)
}

func (uc *CustomerUsecase) CancelEdit(id int) error {
	return uc.flow.cancel(id)
}
