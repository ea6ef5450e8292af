package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/velora-motors/storefront-backend/pkg/checkout"
	"github.com/velora-motors/storefront-backend/pkg/enums"
	redisclient "github.com/velora-motors/storefront-backend/pkg/redis"
)

// State is the per-session checkout progress held in Redis between steps.
type State struct {
	Step     enums.CheckoutStep     `json:"step"`
	Shipping *checkout.ShippingForm `json:"shipping,omitempty"`
}

// StateStore persists checkout progress keyed by session. Load returns
// (nil, nil) when no state exists.
type StateStore interface {
	Load(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State) error
	Delete(ctx context.Context, sessionID string) error
}

type redisStateStore struct {
	client *redisclient.Client
	ttl    time.Duration
}

// NewStateStore builds the Redis-backed checkout state store.
func NewStateStore(client *redisclient.Client, ttl time.Duration) (StateStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("state ttl must be positive")
	}
	return &redisStateStore{client: client, ttl: ttl}, nil
}

func (r *redisStateStore) Load(ctx context.Context, sessionID string) (*State, error) {
	raw, err := r.client.Get(ctx, r.client.CheckoutStateKey(sessionID))
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load checkout state: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("decode checkout state: %w", err)
	}
	return &state, nil
}

func (r *redisStateStore) Save(ctx context.Context, sessionID string, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode checkout state: %w", err)
	}
	if err := r.client.Set(ctx, r.client.CheckoutStateKey(sessionID), string(raw), r.ttl); err != nil {
		return fmt.Errorf("save checkout state: %w", err)
	}
	return nil
}

func (r *redisStateStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.client.CheckoutStateKey(sessionID)); err != nil {
		return fmt.Errorf("delete checkout state: %w", err)
	}
	return nil
}
