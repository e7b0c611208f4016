// internal/application/usecase/dashboard_usecase.go
package usecase

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/common"
	customerdom "storefront/internal/domain/customer"
	dashboarddom "storefront/internal/domain/dashboard"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
)

// DashboardUsecase builds the console overview from the admin tables and the chart series.
type DashboardUsecase struct {
	products  productdom.Repository
	orders    orderdom.Repository
	customers customerdom.Repository
	series    dashboarddom.SeriesSource
}

func NewDashboardUsecase(
	products productdom.Repository,
	orders orderdom.Repository,
	customers customerdom.Repository,
	series dashboarddom.SeriesSource,
) *DashboardUsecase {
	return &DashboardUsecase{products: products, orders: orders, customers: customers, series: series}
}

func (uc *DashboardUsecase) Overview(ctx context.Context) (dashboarddom.Overview, error) {
	all := common.Filter{}

	orders, err := uc.orders.List(ctx, all)
	if err != nil {
		return dashboarddom.Overview{}, err
	}
	customers, err := uc.customers.List(ctx, all)
	if err != nil {
		return dashboarddom.Overview{}, err
	}
	products, err := uc.products.List(ctx, all)
	if err != nil {
		return dashboarddom.Overview{}, err
	}

	var series dashboarddom.Series
	if uc.series != nil {
		if series, err = uc.series.Series(ctx); err != nil {
			return dashboarddom.Overview{}, err
		}
	}

	sales := decimal.Zero
	for _, o := range orders {
		if o.Status != orderdom.StatusCancelled {
			sales = sales.Add(o.Total)
		}
	}
	units := 0
	for _, p := range products {
		units += p.Stock
	}

	pts := series.MonthlySales
	salesChange, salesTrend := dashboarddom.Change(dashboarddom.LastTwo(pts, func(p dashboarddom.SalesPoint) decimal.Decimal { return p.Sales }))
	ordersChange, ordersTrend := dashboarddom.Change(dashboarddom.LastTwo(pts, func(p dashboarddom.SalesPoint) decimal.Decimal {
		return decimal.NewFromInt(int64(p.Orders))
	}))
	custChange, custTrend := dashboarddom.Change(dashboarddom.LastTwo(pts, func(p dashboarddom.SalesPoint) decimal.Decimal {
		return decimal.NewFromInt(int64(p.Customers))
	}))

	stats := []dashboarddom.StatCard{
		{Key: "sales", Title: "Total Sales", Value: "$" + sales.StringFixed(2), Change: salesChange, Trend: salesTrend},
		{Key: "orders", Title: "Orders", Value: strconv.Itoa(len(orders)), Change: ordersChange, Trend: ordersTrend},
		{Key: "customers", Title: "Customers", Value: strconv.Itoa(len(customers)), Change: custChange, Trend: custTrend},
		{Key: "stock", Title: "Units in Stock", Value: strconv.Itoa(units), Trend: dashboarddom.TrendUp},
	}

	if series.MonthlySales == nil {
		series.MonthlySales = []dashboarddom.SalesPoint{}
	}
	if series.RevenueByCategory == nil {
		series.RevenueByCategory = []dashboarddom.CategoryRevenue{}
	}
	if series.TopProducts == nil {
		series.TopProducts = []dashboarddom.TopProduct{}
	}
	if series.RecentActivities == nil {
		series.RecentActivities = []dashboarddom.Activity{}
	}
	return dashboarddom.Overview{Stats: stats, Series: series}, nil
}
