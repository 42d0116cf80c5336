package shopper

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Carts struct {
	store Store
	ttl   time.Duration
}

func NewCarts(store Store, ttl time.Duration) *Carts {
	return &Carts{store: store, ttl: ttl}
}

// Get returns the session's cart; a session without one has an empty cart.
func (c *Carts) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	data, err := c.store.Get(ctx, cartKey(sessionID))
	if errors.Is(err, ErrNotFound) {
		return &model.Cart{Items: []model.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	return &cart, nil
}

// Add puts one more p into the session's cart and returns the stored cart.
func (c *Carts) Add(ctx context.Context, sessionID string, p model.Product) (*model.Cart, error) {
	var cart model.Cart
	err := c.store.Update(ctx, cartKey(sessionID), c.ttl, func(current []byte) ([]byte, error) {
		cart = model.Cart{Items: []model.CartItem{}}
		if current != nil {
			if err := json.Unmarshal(current, &cart); err != nil {
				return nil, err
			}
		}
		cart.Add(p)
		return json.Marshal(cart)
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}
