package shopper

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/catalog"
)

// Views stores the last catalog view of each session so another instance,
// or this one after a restart, can rebuild it.
type Views struct {
	store Store
	ttl   time.Duration
}

func NewViews(store Store, ttl time.Duration) *Views {
	return &Views{store: store, ttl: ttl}
}

func (v *Views) Save(ctx context.Context, sessionID string, snap catalog.ViewSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return v.store.Set(ctx, viewKey(sessionID), data, v.ttl)
}

// Load returns ErrNotFound when the session never saved a view.
func (v *Views) Load(ctx context.Context, sessionID string) (catalog.ViewSnapshot, error) {
	var snap catalog.ViewSnapshot
	data, err := v.store.Get(ctx, viewKey(sessionID))
	if err != nil {
		return snap, err
	}
	err = json.Unmarshal(data, &snap)
	return snap, err
}
