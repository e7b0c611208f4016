// internal/domain/dashboard/entity.go
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// SalesPoint is one month of the sales chart.
type SalesPoint struct {
	Month     string          `json:"month" yaml:"month"`
	Sales     decimal.Decimal `json:"sales" yaml:"sales"`
	Orders    int             `json:"orders" yaml:"orders"`
	Customers int             `json:"customers" yaml:"customers"`
}

type CategoryRevenue struct {
	Name  string          `json:"name" yaml:"name"`
	Value decimal.Decimal `json:"value" yaml:"value"`
	Color string          `json:"color" yaml:"color"`
}

type TopProduct struct {
	ID      int             `json:"id" yaml:"id"`
	Name    string          `json:"name" yaml:"name"`
	Sales   int             `json:"sales" yaml:"sales"`
	Revenue decimal.Decimal `json:"revenue" yaml:"revenue"`
	Trend   Trend           `json:"trend" yaml:"trend"`
	Image   string          `json:"image" yaml:"image"`
}

type Activity struct {
	ID     int    `json:"id" yaml:"id"`
	Action string `json:"action" yaml:"action"`
	User   string `json:"user" yaml:"user"`
	Time   string `json:"time" yaml:"time"`
	Amount string `json:"amount,omitempty" yaml:"amount"`
	Rating *int   `json:"rating,omitempty" yaml:"rating"`
}

// Series is the chart data that is not derived from the admin tables.
type Series struct {
	MonthlySales      []SalesPoint      `json:"monthlySales" yaml:"monthlySales"`
	RevenueByCategory []CategoryRevenue `json:"revenueByCategory" yaml:"revenueByCategory"`
	TopProducts       []TopProduct      `json:"topProducts" yaml:"topProducts"`
	RecentActivities  []Activity        `json:"recentActivities" yaml:"recentActivities"`
}

// StatCard is one headline number with its month-over-month change.
type StatCard struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
	Trend  Trend  `json:"trend"`
}

type Overview struct {
	Stats []StatCard `json:"stats"`
	Series
}

// SeriesSource provides the chart series.
type SeriesSource interface {
	Series(ctx context.Context) (Series, error)
}

// Change formats the relative change from prev to cur as "+12.5%".
// A zero prev yields an empty change and an up trend.
func Change(prev, cur decimal.Decimal) (string, Trend) {
	if prev.IsZero() {
		return "", TrendUp
	}
	pct := cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(1)
	if pct.IsNegative() {
		return pct.StringFixed(1) + "%", TrendDown
	}
	return fmt.Sprintf("+%s%%", pct.StringFixed(1)), TrendUp
}

// LastTwo returns the previous and current month of the series for field.
func LastTwo(points []SalesPoint, field func(SalesPoint) decimal.Decimal) (prev, cur decimal.Decimal) {
	switch n := len(points); {
	case n == 0:
		return decimal.Zero, decimal.Zero
	case n == 1:
		return decimal.Zero, field(points[0])
	default:
		return field(points[n-2]), field(points[n-1])
	}
}
