package usecase

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/adapters/out/memory"
	customerdom "storefront/internal/domain/customer"
	dashboarddom "storefront/internal/domain/dashboard"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
	settingsdom "storefront/internal/domain/settings"
)

// plainHasher stores "h:" + plain; enough to exercise the flow.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "h:" + p, nil }
func (plainHasher) Verify(h, p string) bool       { return h == "h:"+p }

func baseSettings() settingsdom.Settings {
	return settingsdom.Settings{
		Profile: settingsdom.Profile{FirstName: "Lavina", Email: "lavina@example.com"},
		System:  settingsdom.System{Currency: "THB", BackupFrequency: "daily"},
	}
}

func TestSettingsUsecase_UpdateProfile(t *testing.T) {
	repo := memory.NewSettingsRepositoryMem(baseSettings())
	uc := NewSettingsUsecaseWithClock(repo, plainHasher{}, testNow())
	ctx := context.Background()

	s, err := uc.Update(ctx, SettingsUpdate{
		Profile: settingsdom.Profile{FirstName: " Lee ", Email: "lee@example.com"},
		System:  settingsdom.System{Currency: "usd", BackupFrequency: "Weekly"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Lee", s.Profile.FirstName)
	assert.Equal(t, "USD", s.System.Currency)
	assert.Equal(t, "weekly", s.System.BackupFrequency)
	assert.Nil(t, s.PasswordChangedAt)

	_, err = uc.Update(ctx, SettingsUpdate{System: settingsdom.System{BackupFrequency: "hourly"}})
	assert.ErrorIs(t, err, settingsdom.ErrInvalidSettings)

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "weekly", got.System.BackupFrequency)
}

func TestSettingsUsecase_PasswordChange(t *testing.T) {
	repo := memory.NewSettingsRepositoryMem(baseSettings())
	uc := NewSettingsUsecaseWithClock(repo, plainHasher{}, testNow())
	ctx := context.Background()
	base := baseSettings()

	tests := []struct {
		name string
		pc   settingsdom.PasswordChange
		want error
	}{
		{"mismatch", settingsdom.PasswordChange{New: "secret1", Confirm: "secret2"}, settingsdom.ErrPasswordMismatch},
		{"too short", settingsdom.PasswordChange{New: "abc", Confirm: "abc"}, settingsdom.ErrPasswordTooShort},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Update(ctx, SettingsUpdate{Profile: base.Profile, System: base.System, Password: tc.pc})
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// first password needs no current one
	s, err := uc.Update(ctx, SettingsUpdate{Profile: base.Profile, System: base.System,
		Password: settingsdom.PasswordChange{New: "secret1", Confirm: "secret1"}})
	require.NoError(t, err)
	require.NotNil(t, s.PasswordChangedAt)

	_, err = uc.Update(ctx, SettingsUpdate{Profile: base.Profile, System: base.System,
		Password: settingsdom.PasswordChange{Current: "wrong!", New: "secret2", Confirm: "secret2"}})
	assert.ErrorIs(t, err, settingsdom.ErrCurrentPasswordInvalid)

	_, err = uc.Update(ctx, SettingsUpdate{Profile: base.Profile, System: base.System,
		Password: settingsdom.PasswordChange{Current: "secret1", New: "secret2", Confirm: "secret2"}})
	require.NoError(t, err)

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "h:secret2", stored.PasswordHash)
}

func TestDashboardUsecase_Overview(t *testing.T) {
	products := memory.NewProductRepositoryMem([]productdom.Product{
		{ID: 1, Name: "A", Price: dec("1"), Stock: 5, Category: "x"},
		{ID: 2, Name: "B", Price: dec("1"), Stock: 7, Category: "x"},
	})
	orders := memory.NewOrderRepositoryMem([]orderdom.Order{
		{ID: "ORD-001", Total: dec("100.50"), Status: orderdom.StatusDelivered},
		{ID: "ORD-002", Total: dec("20"), Status: orderdom.StatusPending},
		{ID: "ORD-003", Total: dec("999"), Status: orderdom.StatusCancelled},
	})
	customers := memory.NewCustomerRepositoryMem([]customerdom.Customer{{ID: 1, Name: "C"}})
	series := memory.NewDashboardSeriesMem(dashboarddom.Series{
		MonthlySales: []dashboarddom.SalesPoint{
			{Month: "May", Sales: dec("1000"), Orders: 10, Customers: 4},
			{Month: "Jun", Sales: dec("1250"), Orders: 8, Customers: 4},
		},
	})

	uc := NewDashboardUsecase(products, orders, customers, series)
	ov, err := uc.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, ov.Stats, 4)

	byKey := map[string]dashboarddom.StatCard{}
	for _, s := range ov.Stats {
		byKey[s.Key] = s
	}
	assert.Equal(t, "$120.50", byKey["sales"].Value)
	assert.Equal(t, "+25.0%", byKey["sales"].Change)
	assert.Equal(t, "3", byKey["orders"].Value)
	assert.Equal(t, "-20.0%", byKey["orders"].Change)
	assert.Equal(t, dashboarddom.TrendDown, byKey["orders"].Trend)
	assert.Equal(t, "1", byKey["customers"].Value)
	assert.Equal(t, "12", byKey["stock"].Value)

	assert.Len(t, ov.MonthlySales, 2)
	assert.NotNil(t, ov.TopProducts)
}

func TestReportUsecase_Unconfigured(t *testing.T) {
	uc := NewReportUsecase(nil)
	ctx := context.Background()

	_, err := uc.IncomeHistory(ctx)
	assert.ErrorIs(t, err, ErrReportsUnavailable)
	_, err = uc.TotalIncome(ctx)
	assert.ErrorIs(t, err, ErrReportsUnavailable)
	_, err = uc.Users1(ctx)
	assert.ErrorIs(t, err, ErrReportsUnavailable)
}

type csvBuilder struct{}

func (csvBuilder) Inventory(w io.Writer, products []productdom.Product) error {
	for _, p := range products {
		if _, err := io.WriteString(w, p.Name+"\n"); err != nil {
			return err
		}
	}
	return nil
}

type memUploader struct {
	path, contentType string
	data              []byte
}

func (u *memUploader) Bucket() string { return "exports-bucket" }

func (u *memUploader) Upload(_ context.Context, path, contentType string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	u.path, u.contentType, u.data = path, contentType, b
	return nil
}

func TestExportUsecase(t *testing.T) {
	products := memory.NewProductRepositoryMem([]productdom.Product{
		{ID: 1, Name: "Alpha", Price: dec("1"), Stock: 1, Category: "x"},
		{ID: 2, Name: "Beta", Price: dec("1"), Stock: 0, Category: "x"},
	})
	clock := fixedClock{t: mustDate("2024-07-04")}
	ctx := context.Background()

	var buf bytes.Buffer
	uc := NewExportUsecaseWithClock(products, csvBuilder{}, nil, clock)
	require.NoError(t, uc.WriteInventory(ctx, &buf))
	assert.Equal(t, "Alpha\nBeta\n", buf.String())

	_, err := uc.UploadInventory(ctx)
	assert.ErrorIs(t, err, ErrExportUploadDisabled)

	up := &memUploader{}
	uc = NewExportUsecaseWithClock(products, csvBuilder{}, up, clock)
	res, err := uc.UploadInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "exports-bucket", res.Bucket)
	assert.Equal(t, "exports/inventory-20240704-000000.xlsx", res.ObjectPath)
	assert.Equal(t, InventoryContentType, up.contentType)
	assert.True(t, strings.HasPrefix(string(up.data), "Alpha"))
}
