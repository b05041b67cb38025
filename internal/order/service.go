package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MikeMC777/marketplace-api/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores an order with its items. The total is taken as sent and is
// not checked against the item prices.
func (s *Service) Create(ctx context.Context, in CreateOrderRequest) (*Order, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return nil, fmt.Errorf("userId is required: %w", apperr.ErrInvalid)
	}

	o := &Order{
		ID:     uuid.NewString(),
		UserID: userID,
		Total:  in.Total,
		Status: StatusCompleted,
		Items:  make([]Item, 0, len(in.Items)),
	}
	for _, it := range in.Items {
		o.Items = append(o.Items, Item{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			ProductID: string(it.ProductID),
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// DeleteItem removes one item from an order. An item that does not exist or
// belongs to another order is reported as ErrItemNotFound.
func (s *Service) DeleteItem(ctx context.Context, orderID, itemID string) error {
	ok, err := s.repo.DeleteItem(ctx, orderID, itemID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrItemNotFound
	}
	return nil
}
