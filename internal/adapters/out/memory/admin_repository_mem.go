// internal/adapters/out/memory/admin_repository_mem.go
package memory

import (
	"context"

	"storefront/internal/domain/common"
	customerdom "storefront/internal/domain/customer"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
)

// ============================================================
// Products (append, id = max+1)
// ============================================================

type ProductRepositoryMem struct {
	t *table[int, productdom.Product]
}

func NewProductRepositoryMem(seed []productdom.Product) *ProductRepositoryMem {
	return &ProductRepositoryMem{
		t: newTable(seed, func(p productdom.Product) int { return p.ID }, nil),
	}
}

func (r *ProductRepositoryMem) List(_ context.Context, f common.Filter) ([]productdom.Product, error) {
	return r.t.list(func(p productdom.Product) bool { return p.Matches(f) }), nil
}

func (r *ProductRepositoryMem) GetByID(_ context.Context, id int) (productdom.Product, error) {
	p, ok := r.t.get(id)
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepositoryMem) Create(_ context.Context, p productdom.Product) (productdom.Product, error) {
	return r.t.create(func(ids []int) (productdom.Product, error) {
		p.ID = common.NextIntID(ids)
		return p, nil
	}, false)
}

func (r *ProductRepositoryMem) Update(_ context.Context, p productdom.Product) (productdom.Product, error) {
	if !r.t.replace(p) {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepositoryMem) Delete(_ context.Context, id int) error {
	if !r.t.remove(id) {
		return productdom.ErrNotFound
	}
	return nil
}

// ============================================================
// Orders (prepend, id = ORD-%03d)
// ============================================================

type OrderRepositoryMem struct {
	t *table[string, orderdom.Order]
}

func NewOrderRepositoryMem(seed []orderdom.Order) *OrderRepositoryMem {
	return &OrderRepositoryMem{
		t: newTable(seed, func(o orderdom.Order) string { return o.ID }, cloneOrder),
	}
}

func cloneOrder(o orderdom.Order) orderdom.Order {
	o.Items = append([]orderdom.OrderItem(nil), o.Items...)
	if o.Items == nil {
		o.Items = []orderdom.OrderItem{}
	}
	return o
}

func (r *OrderRepositoryMem) List(_ context.Context, f common.Filter) ([]orderdom.Order, error) {
	return r.t.list(func(o orderdom.Order) bool { return o.Matches(f) }), nil
}

func (r *OrderRepositoryMem) GetByID(_ context.Context, id string) (orderdom.Order, error) {
	o, ok := r.t.get(id)
	if !ok {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	return o, nil
}

func (r *OrderRepositoryMem) Create(_ context.Context, o orderdom.Order) (orderdom.Order, error) {
	return r.t.create(func(ids []string) (orderdom.Order, error) {
		o.ID = orderdom.NextID(ids)
		return o, nil
	}, true)
}

func (r *OrderRepositoryMem) Update(_ context.Context, o orderdom.Order) (orderdom.Order, error) {
	if !r.t.replace(o) {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	return cloneOrder(o), nil
}

func (r *OrderRepositoryMem) Delete(_ context.Context, id string) error {
	if !r.t.remove(id) {
		return orderdom.ErrNotFound
	}
	return nil
}

// ============================================================
// Customers (prepend, id = max+1)
// ============================================================

type CustomerRepositoryMem struct {
	t *table[int, customerdom.Customer]
}

func NewCustomerRepositoryMem(seed []customerdom.Customer) *CustomerRepositoryMem {
	return &CustomerRepositoryMem{
		t: newTable(seed, func(c customerdom.Customer) int { return c.ID }, nil),
	}
}

func (r *CustomerRepositoryMem) List(_ context.Context, f common.Filter) ([]customerdom.Customer, error) {
	return r.t.list(func(c customerdom.Customer) bool { return c.Matches(f) }), nil
}

func (r *CustomerRepositoryMem) GetByID(_ context.Context, id int) (customerdom.Customer, error) {
	c, ok := r.t.get(id)
	if !ok {
		return customerdom.Customer{}, customerdom.ErrNotFound
	}
	return c, nil
}

func (r *CustomerRepositoryMem) Create(_ context.Context, c customerdom.Customer) (customerdom.Customer, error) {
	return r.t.create(func(ids []int) (customerdom.Customer, error) {
		c.ID = common.NextIntID(ids)
		return c, nil
	}, true)
}

func (r *CustomerRepositoryMem) Update(_ context.Context, c customerdom.Customer) (customerdom.Customer, error) {
	if !r.t.replace(c) {
		return customerdom.Customer{}, customerdom.ErrNotFound
	}
	return c, nil
}

func (r *CustomerRepositoryMem) Delete(_ context.Context, id int) error {
	if !r.t.remove(id) {
		return customerdom.ErrNotFound
	}
	return nil
}
