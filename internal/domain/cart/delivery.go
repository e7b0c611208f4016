package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrUnknownDeliveryOption = errors.New("cart: unknown delivery option")

// DefaultDeliveryOptionID is the option selected on a new cart (standard shipping).
const DefaultDeliveryOptionID = 1

// DeliveryOption is a flat-rate shipping choice.
type DeliveryOption struct {
	ID    int             `json:"id" yaml:"id"`
	Name  string          `json:"name" yaml:"name"`
	Price decimal.Decimal `json:"price" yaml:"price"`
}

// DefaultDeliveryOptions returns the built-in table.
func DefaultDeliveryOptions() []DeliveryOption {
	return []DeliveryOption{
		{ID: 1, Name: "Standard Delivery (3-5 days)", Price: decimal.Zero},
		{ID: 2, Name: "Express Delivery (1-2 days)", Price: decimal.NewFromInt(15)},
		{ID: 3, Name: "Same Day Delivery", Price: decimal.NewFromInt(25)},
	}
}

// FindDeliveryOption looks an option up by id.
func FindDeliveryOption(options []DeliveryOption, id int) (DeliveryOption, bool) {
	for _, o := range options {
		if o.ID == id {
			return o, true
		}
	}
	return DeliveryOption{}, false
}
