// internal/domain/catalog/entity.go
package catalog

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("catalog: not found")
	ErrStoreNotFound  = errors.New("catalog: store not found")
	ErrInvalidReview  = errors.New("catalog: invalid review")
	ErrInvalidProduct = errors.New("catalog: invalid product")
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a buyer review on a storefront product.
type Review struct {
	ID      int    `json:"id" yaml:"id"`
	User    string `json:"user" yaml:"user"`
	Rating  int    `json:"rating" yaml:"rating"`
	Comment string `json:"comment" yaml:"comment"`
	Date    string `json:"date" yaml:"date"`
}

// Product is a storefront listing.
type Product struct {
	ID            string           `json:"id" yaml:"id"`
	Name          string           `json:"name" yaml:"name"`
	Price         decimal.Decimal  `json:"price" yaml:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty" yaml:"originalPrice"`
	ImageURL      string           `json:"imageUrl" yaml:"imageUrl"`
	Images        []string         `json:"images,omitempty" yaml:"images"`
	Category      string           `json:"category" yaml:"category"`
	StoreID       int              `json:"storeId" yaml:"storeId"`
	StoreName     string           `json:"storeName" yaml:"storeName"`
	Seller        string           `json:"seller,omitempty" yaml:"seller"`
	Description   string           `json:"description,omitempty" yaml:"description"`
	Rating        float64          `json:"rating" yaml:"rating"`
	ReviewCount   int              `json:"reviewCount" yaml:"reviewCount"`
	Likes         int              `json:"likes" yaml:"likes"`
	InStock       bool             `json:"inStock" yaml:"inStock"`
	Reviews       []Review         `json:"reviews,omitempty" yaml:"reviews"`
}

// Store is a seller storefront.
type Store struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	LogoURL     string `json:"logoUrl" yaml:"logoUrl"`
	Description string `json:"description" yaml:"description"`
}

// Query narrows the product list. Empty fields match everything.
type Query struct {
	Category    string
	SearchQuery string
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Name) == "" || p.Price.IsNegative() {
		return ErrInvalidProduct
	}
	return nil
}

// Matches applies q: category case-insensitively exact, search over name/category/store.
func (p Product) Matches(q Query) bool {
	if c := strings.TrimSpace(q.Category); c != "" && !strings.EqualFold(c, p.Category) {
		return false
	}
	s := strings.ToLower(strings.TrimSpace(q.SearchQuery))
	if s == "" {
		return true
	}
	for _, f := range []string{p.Name, p.Category, p.StoreName} {
		if strings.Contains(strings.ToLower(f), s) {
			return true
		}
	}
	return false
}

// Like adjusts the like counter; it never drops below zero.
func (p *Product) Like(liked bool) {
	if liked {
		p.Likes++
		return
	}
	if p.Likes > 0 {
		p.Likes--
	}
}

// AddReview appends r, assigns its id and folds its rating into the average.
func (p *Product) AddReview(r Review) (Review, error) {
	r.User = strings.TrimSpace(r.User)
	r.Comment = strings.TrimSpace(r.Comment)
	if r.Rating < MinRating || r.Rating > MaxRating || r.Comment == "" {
		return Review{}, ErrInvalidReview
	}
	if r.User == "" {
		r.User = "Anonymous"
	}

	maxID := 0
	for _, existing := range p.Reviews {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	r.ID = maxID + 1

	count := p.ReviewCount
	if count < len(p.Reviews) {
		count = len(p.Reviews)
	}
	total := decimal.NewFromFloat(p.Rating).Mul(decimal.NewFromInt(int64(count))).Add(decimal.NewFromInt(int64(r.Rating)))
	p.Rating = total.Div(decimal.NewFromInt(int64(count + 1))).Round(1).InexactFloat64()
	p.ReviewCount = count + 1

	// newest first
	p.Reviews = append([]Review{r}, p.Reviews...)
	return r, nil
}

// ToCartSnapshot exposes the fields a cart line copies from a listing.
func (p Product) ToCartSnapshot() (name string, price decimal.Decimal, original *decimal.Decimal, rating *float64) {
	if p.Rating > 0 {
		r := p.Rating
		rating = &r
	}
	return p.Name, p.Price, p.OriginalPrice, rating
}
