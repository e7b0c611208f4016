package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/adapters/out/memory"
	customerdom "storefront/internal/domain/customer"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func seedProducts() []productdom.Product {
	list := []productdom.Product{
		{ID: 1, Name: "Wireless Headphones", Price: dec("99.99"), Stock: 45, Category: "Electronics"},
		{ID: 2, Name: "Coffee Mug", Price: dec("12.50"), Stock: 0, Category: "Home"},
	}
	for i := range list {
		list[i].Normalize()
	}
	return list
}

func TestProductUsecase_CreateDerivesStatus(t *testing.T) {
	uc := NewProductUsecase(memory.NewProductRepositoryMem(seedProducts()))
	ctx := context.Background()

	p, err := uc.Create(ctx, ProductCreateInput{Name: " Desk ", Price: dec("150"), Stock: 3, Category: "Furniture"})
	require.NoError(t, err)
	assert.Equal(t, 3, p.ID)
	assert.Equal(t, "Desk", p.Name)
	assert.Equal(t, productdom.StatusInStock, p.Status)
	assert.Equal(t, productdom.DefaultImage, p.Image)

	_, err = uc.Create(ctx, ProductCreateInput{Name: "Free", Price: dec("0"), Category: "X"})
	assert.ErrorIs(t, err, productdom.ErrInvalidProduct)

	list, err := uc.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 3, list[2].ID)
}

func TestProductUsecase_ListFilters(t *testing.T) {
	uc := NewProductUsecase(memory.NewProductRepositoryMem(seedProducts()))
	ctx := context.Background()

	list, err := uc.List(ctx, "mug", "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].ID)

	list, err = uc.List(ctx, "", string(productdom.StatusInStock))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].ID)

	list, err = uc.List(ctx, "", "all")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestProductUsecase_UpdateStock(t *testing.T) {
	uc := NewProductUsecase(memory.NewProductRepositoryMem(seedProducts()))
	ctx := context.Background()

	p, err := uc.UpdateStock(ctx, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, productdom.StatusInStock, p.Status)

	p, err = uc.UpdateStock(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, productdom.StatusOutOfStock, p.Status)

	_, err = uc.UpdateStock(ctx, 2, -1)
	assert.ErrorIs(t, err, productdom.ErrInvalidProduct)

	_, err = uc.UpdateStock(ctx, 99, 1)
	assert.ErrorIs(t, err, productdom.ErrNotFound)
}

func TestProductUsecase_DraftLifecycle(t *testing.T) {
	uc := NewProductUsecase(memory.NewProductRepositoryMem(seedProducts()))
	ctx := context.Background()

	_, err := uc.BeginEdit(ctx, 1)
	require.NoError(t, err)

	d, err := uc.EditDraft(1, ProductPatch{Name: strPtr("Studio Headphones"), Stock: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, productdom.StatusOutOfStock, d.Status)

	// the stored record is untouched until save
	stored, err := uc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", stored.Name)

	saved, err := uc.SaveDraft(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Studio Headphones", saved.Name)
	assert.Equal(t, productdom.StatusOutOfStock, saved.Status)

	_, err = uc.Draft(1)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestProductUsecase_InvalidDraftIsKept(t *testing.T) {
	uc := NewProductUsecase(memory.NewProductRepositoryMem(seedProducts()))
	ctx := context.Background()

	_, err := uc.BeginEdit(ctx, 1)
	require.NoError(t, err)
	_, err = uc.EditDraft(1, ProductPatch{Name: strPtr("  ")})
	require.NoError(t, err)

	_, err = uc.SaveDraft(ctx, 1)
	assert.ErrorIs(t, err, productdom.ErrInvalidProduct)

	_, err = uc.Draft(1)
	assert.NoError(t, err)

	require.NoError(t, uc.CancelEdit(1))
	assert.ErrorIs(t, uc.CancelEdit(1), ErrDraftNotFound)

	stored, err := uc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", stored.Name)
}

func TestProductUsecase_DeleteDropsDraft(t *testing.T) {
	uc := NewProductUsecase(memory.NewProductRepositoryMem(seedProducts()))
	ctx := context.Background()

	_, err := uc.BeginEdit(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, 2))

	_, err = uc.Draft(2)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	_, err = uc.Get(ctx, 2)
	assert.ErrorIs(t, err, productdom.ErrNotFound)
}

func TestOrderUsecase_CreatePrependsWithDefaults(t *testing.T) {
	clock := fixedClock{t: mustDate("2024-03-15")}
	repo := memory.NewOrderRepositoryMem([]orderdom.Order{
		{ID: "ORD-001", CustomerName: "John", CustomerEmail: "john@example.com", Date: "2024-01-15", Total: dec("10"), Status: orderdom.StatusDelivered},
		{ID: "ORD-007", CustomerName: "Jane", CustomerEmail: "jane@example.com", Date: "2024-01-16", Total: dec("20"), Status: orderdom.StatusPending},
	})
	uc := NewOrderUsecaseWithClock(repo, clock)
	ctx := context.Background()

	o, err := uc.Create(ctx, OrderCreateInput{CustomerName: "Mike", CustomerEmail: "mike@example.com", Total: dec("42.5")})
	require.NoError(t, err)
	assert.Equal(t, "ORD-008", o.ID)
	assert.Equal(t, "2024-03-15", o.Date)
	assert.Equal(t, orderdom.StatusPending, o.Status)

	list, err := uc.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "ORD-008", list[0].ID)

	_, err = uc.Create(ctx, OrderCreateInput{CustomerName: "X", CustomerEmail: "x@example.com", Total: dec("1"), Status: "lost"})
	assert.ErrorIs(t, err, orderdom.ErrInvalidStatus)

	_, err = uc.Create(ctx, OrderCreateInput{CustomerName: "X", CustomerEmail: "x@example.com"})
	assert.ErrorIs(t, err, orderdom.ErrInvalidOrder)
}

func TestOrderUsecase_UpdateStatus(t *testing.T) {
	repo := memory.NewOrderRepositoryMem([]orderdom.Order{
		{ID: "ORD-001", CustomerName: "John", CustomerEmail: "john@example.com", Date: "2024-01-15", Total: dec("10"), Status: orderdom.StatusPending},
	})
	uc := NewOrderUsecase(repo)
	ctx := context.Background()

	o, err := uc.UpdateStatus(ctx, "ORD-001", "shipped")
	require.NoError(t, err)
	assert.Equal(t, orderdom.StatusShipped, o.Status)

	_, err = uc.UpdateStatus(ctx, "ORD-001", "teleported")
	assert.ErrorIs(t, err, orderdom.ErrInvalidStatus)

	_, err = uc.UpdateStatus(ctx, "ORD-404", "Pending")
	assert.ErrorIs(t, err, orderdom.ErrNotFound)

	list, err := uc.List(ctx, "", string(orderdom.StatusShipped))
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestOrderUsecase_DraftSave(t *testing.T) {
	repo := memory.NewOrderRepositoryMem([]orderdom.Order{
		{ID: "ORD-001", CustomerName: "John", CustomerEmail: "john@example.com", Date: "2024-01-15", Total: dec("10"), Status: orderdom.StatusPending},
	})
	uc := NewOrderUsecase(repo)
	ctx := context.Background()

	_, err := uc.BeginEdit(ctx, "ORD-001")
	require.NoError(t, err)
	_, err = uc.EditDraft("ORD-001", OrderPatch{Status: strPtr("bogus")})
	assert.ErrorIs(t, err, orderdom.ErrInvalidStatus)

	_, err = uc.EditDraft("ORD-001", OrderPatch{CustomerName: strPtr("Johnny"), Status: strPtr("Delivered")})
	require.NoError(t, err)
	o, err := uc.SaveDraft(ctx, "ORD-001")
	require.NoError(t, err)
	assert.Equal(t, "Johnny", o.CustomerName)
	assert.Equal(t, orderdom.StatusDelivered, o.Status)
}

func TestCustomerUsecase_CreateAndToggle(t *testing.T) {
	clock := fixedClock{t: mustDate("2024-02-01")}
	repo := memory.NewCustomerRepositoryMem([]customerdom.Customer{
		{ID: 4, Name: "Sarah", Email: "sarah@example.com", Phone: "+1 555-0101", JoinedDate: "2023-06-15", Status: customerdom.StatusActive},
	})
	uc := NewCustomerUsecaseWithClock(repo, clock)
	ctx := context.Background()

	c, err := uc.Create(ctx, CustomerCreateInput{Name: "Tom", Email: "tom@example.com", Phone: "555-0199"})
	require.NoError(t, err)
	assert.Equal(t, 5, c.ID)
	assert.Equal(t, "2024-02-01", c.JoinedDate)
	assert.Equal(t, customerdom.StatusActive, c.Status)

	c, err = uc.ToggleStatus(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, customerdom.StatusInactive, c.Status)
	c, err = uc.ToggleStatus(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, customerdom.StatusActive, c.Status)

	list, err := uc.List(ctx, "0101", "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].ID)

	_, err = uc.Create(ctx, CustomerCreateInput{Name: "No Email"})
	assert.ErrorIs(t, err, customerdom.ErrInvalidCustomer)
}

func TestCustomerUsecase_UpdateRejectsUnknownStatus(t *testing.T) {
	repo := memory.NewCustomerRepositoryMem([]customerdom.Customer{
		{ID: 1, Name: "Sarah", Email: "sarah@example.com", JoinedDate: "2023-06-15", Status: customerdom.StatusActive},
	})
	uc := NewCustomerUsecase(repo)
	ctx := context.Background()

	_, err := uc.Update(ctx, 1, CustomerPatch{Status: strPtr("Banned")})
	assert.ErrorIs(t, err, customerdom.ErrInvalidStatus)

	c, err := uc.Update(ctx, 1, CustomerPatch{Address: strPtr(" 12 Main St ")})
	require.NoError(t, err)
	assert.Equal(t, "12 Main St", c.Address)

	require.NoError(t, uc.Delete(ctx, 1))
	_, err = uc.Get(ctx, 1)
	assert.ErrorIs(t, err, customerdom.ErrNotFound)
}
