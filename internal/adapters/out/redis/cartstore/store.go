// Package cartstore keeps customer carts in Redis. A cart is one JSON value
// per customer whose expiry is renewed on every write, so an abandoned cart
// disappears with the session.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "cart:"

	maxUpdateAttempts = 10
)

type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

type snapshot struct {
	CustomerID string         `json:"customer_id"`
	Lines      []lineSnapshot `json:"lines"`
}

type lineSnapshot struct {
	ItemID       string `json:"item_id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	Instructions string `json:"instructions,omitempty"`
}

func (s *RedisCartStore) Load(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	raw, err := s.client.Get(ctx, key(customerID)).Bytes()
	return decode(customerID, raw, err)
}

func (s *RedisCartStore) Save(ctx context.Context, c *cart.Cart) error {
	payload, err := encode(c)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(c.CustomerID()), payload, s.ttl).Err()
}

// Update runs fn under WATCH on the cart key. The SET is queued in MULTI, so
// it is discarded when another client wrote the key after it was read.
func (s *RedisCartStore) Update(
	ctx context.Context,
	customerID kernel.UUID,
	fn func(c *cart.Cart) error,
) (*cart.Cart, error) {
	k := key(customerID)
	var updated *cart.Cart

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, k).Bytes()
		c, err := decode(customerID, raw, err)
		if err != nil {
			return err
		}
		if err = fn(c); err != nil {
			return err
		}
		payload, err := encode(c)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, payload, s.ttl)
			return nil
		})
		if err == nil {
			updated = c
		}
		return err
	}

	for range maxUpdateAttempts {
		err := s.client.Watch(ctx, txf, k)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, fmt.Errorf("cart %s: %w after %d attempts", customerID, redis.TxFailedErr, maxUpdateAttempts)
}

// Take reads and deletes the cart with a single GETDEL.
func (s *RedisCartStore) Take(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	raw, err := s.client.GetDel(ctx, key(customerID)).Bytes()
	return decode(customerID, raw, err)
}

func (s *RedisCartStore) Delete(ctx context.Context, customerID kernel.UUID) error {
	return s.client.Del(ctx, key(customerID)).Err()
}

func key(customerID kernel.UUID) string {
	return keyPrefix + customerID.String()
}

func decode(customerID kernel.UUID, raw []byte, err error) (*cart.Cart, error) {
	if errors.Is(err, redis.Nil) {
		return cart.NewCart(customerID)
	}
	if err != nil {
		return nil, err
	}

	var snap snapshot
	if err = json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return fromSnapshot(customerID, snap)
}

func encode(c *cart.Cart) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(toSnapshot(c))
}

func toSnapshot(c *cart.Cart) snapshot {
	lines := c.Lines()
	snap := snapshot{CustomerID: c.CustomerID().String(), Lines: make([]lineSnapshot, 0, len(lines))}
	for _, l := range lines {
		snap.Lines = append(snap.Lines, lineSnapshot{
			ItemID:       l.ItemID.String(),
			Name:         l.Name,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice.String(),
			Instructions: l.Instructions,
		})
	}
	return snap
}

func fromSnapshot(customerID kernel.UUID, snap snapshot) (*cart.Cart, error) {
	lines := make([]cart.Line, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		itemID, err := kernel.UUIDFromString(l.ItemID)
		if err != nil {
			return nil, err
		}
		price, err := kernel.MoneyFromString(l.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, cart.Line{
			ItemID:       itemID,
			Name:         l.Name,
			Quantity:     l.Quantity,
			UnitPrice:    price,
			Instructions: l.Instructions,
		})
	}
	return cart.RestoreCart(customerID, lines)
}
