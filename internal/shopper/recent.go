package shopper

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"
)

// MaxRecentViews caps the recently viewed list.
const MaxRecentViews = 5

// PushRecent puts id at the front of ids, dropping an older copy of it and
// anything past MaxRecentViews.
func PushRecent(ids []int64, id int64) []int64 {
	out := make([]int64, 0, MaxRecentViews)
	out = append(out, id)
	for _, existing := range ids {
		if len(out) == MaxRecentViews {
			break
		}
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

type RecentViews struct {
	store Store
	ttl   time.Duration
}

func NewRecentViews(store Store, ttl time.Duration) *RecentViews {
	return &RecentViews{store: store, ttl: ttl}
}

// List returns viewed product ids, most recent first.
func (r *RecentViews) List(ctx context.Context, sessionID string) ([]int64, error) {
	data, err := r.store.Get(ctx, recentKey(sessionID))
	if errors.Is(err, ErrNotFound) {
		return []int64{}, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	if len(ids) > MaxRecentViews {
		ids = ids[:MaxRecentViews]
	}
	return slices.Clip(ids), nil
}

// Track moves productID to the front of the session's list.
func (r *RecentViews) Track(ctx context.Context, sessionID string, productID int64) ([]int64, error) {
	var ids []int64
	err := r.store.Update(ctx, recentKey(sessionID), r.ttl, func(current []byte) ([]byte, error) {
		ids = []int64{}
		if current != nil {
			if err := json.Unmarshal(current, &ids); err != nil {
				return nil, err
			}
		}
		ids = PushRecent(ids, productID)
		return json.Marshal(ids)
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
