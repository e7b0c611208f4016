// internal/infra/seed/seed.go
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	cartdom "storefront/internal/domain/cart"
	catalogdom "storefront/internal/domain/catalog"
	customerdom "storefront/internal/domain/customer"
	dashboarddom "storefront/internal/domain/dashboard"
	notificationdom "storefront/internal/domain/notification"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
	settingsdom "storefront/internal/domain/settings"
)

//go:embed seed.yaml
var embedded []byte

// Data is the initial state of every in-memory store.
type Data struct {
	DeliveryOptions []cartdom.DeliveryOption       `yaml:"deliveryOptions"`
	Stores          []catalogdom.Store             `yaml:"stores"`
	Catalog         []catalogdom.Product           `yaml:"catalog"`
	Products        []productdom.Product           `yaml:"products"`
	Orders          []orderdom.Order               `yaml:"orders"`
	Customers       []customerdom.Customer         `yaml:"customers"`
	Notifications   []notificationdom.Notification `yaml:"notifications"`
	Settings        settingsdom.Settings           `yaml:"settings"`
	Dashboard       dashboarddom.Series            `yaml:"dashboard"`
}

// Load reads path, or the embedded seed when path is empty.
func Load(path string) (*Data, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Parse(embedded)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes and validates a seed document. Unknown keys are rejected.
func Parse(b []byte) (*Data, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var d Data
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}
	if err := d.normalize(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Data) normalize() error {
	if len(d.DeliveryOptions) == 0 {
		d.DeliveryOptions = cartdom.DefaultDeliveryOptions()
	}
	if _, ok := cartdom.FindDeliveryOption(d.DeliveryOptions, cartdom.DefaultDeliveryOptionID); !ok {
		return errors.New("seed: delivery options must include the default option id 1")
	}

	for i := range d.Catalog {
		if err := d.Catalog[i].Validate(); err != nil {
			return fmt.Errorf("seed: catalog[%d]: %w", i, err)
		}
	}

	seenProduct := map[int]struct{}{}
	for i := range d.Products {
		p := &d.Products[i]
		p.Normalize()
		if err := p.Validate(); err != nil {
			return fmt.Errorf("seed: products[%d]: %w", i, err)
		}
		if _, dup := seenProduct[p.ID]; dup || p.ID <= 0 {
			return fmt.Errorf("seed: products[%d]: bad or duplicate id %d", i, p.ID)
		}
		seenProduct[p.ID] = struct{}{}
	}

	for i := range d.Orders {
		o := &d.Orders[i]
		o.Normalize(o.Date)
		if err := o.Validate(); err != nil {
			return fmt.Errorf("seed: orders[%d]: %w", i, err)
		}
	}

	for i := range d.Customers {
		c := &d.Customers[i]
		c.Normalize(c.JoinedDate)
		if err := c.Validate(); err != nil {
			return fmt.Errorf("seed: customers[%d]: %w", i, err)
		}
	}

	d.Settings.Normalize()
	if err := d.Settings.Validate(); err != nil {
		return fmt.Errorf("seed: settings: %w", err)
	}
	return nil
}
