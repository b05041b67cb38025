package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusCompleted is the only status assigned by this service.
const StatusCompleted = "COMPLETED"

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Order is a placed order with its items. Total and prices marshal as JSON
// numbers (29.97): importing this package sets the process-wide
// decimal.MarshalJSONWithoutQuotes flag, so every decimal.Decimal in the
// binary encodes the same way.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	Items     []Item          `json:"items"`
}

type Item struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
