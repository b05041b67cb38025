package order

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CreateOrderItem payload of an item.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProductID ProductRef      `json:"productId" swaggertype:"string" example:"7"`
	Quantity  int             `json:"quantity"  example:"3"`
	Price     decimal.Decimal `json:"price"     swaggertype:"number" example:"9.99"`
}

// CreateOrderRequest payload of order creation. Total is trusted as sent.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	UserID string            `json:"userId" example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	Total  decimal.Decimal   `json:"total"  swaggertype:"number" example:"29.97"`
	Items  []CreateOrderItem `json:"items"`
}

// ProductRef is a catalog product id. The catalog hands out numeric ids, so
// JSON numbers are accepted and stored in canonical decimal form
// (7.0 -> "7", 1e2 -> "100", 7.50 -> "7.5").
type ProductRef string

func (p *ProductRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = ProductRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("productId must be a string or number: %w", err)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return fmt.Errorf("productId must be a string or number: %w", err)
	}
	*p = ProductRef(d.String())
	return nil
}
