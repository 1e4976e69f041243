package repository

import (
	"context"

	"github.com/polkiloo/procurement-console/internal/domain/model"
)

// OrderRepository describes purchase-order operations served by the API gateway.
type OrderRepository interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	CreateOrder(ctx context.Context, order model.NewOrder) (*model.Order, error)
	DecideOrder(ctx context.Context, number string, decision model.Decision) (*model.Order, error)
}
