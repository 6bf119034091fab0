package history

import (
	"context"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-redis/redis/v8"

	"AuctionBidder/internal/model"
)

// RedisStore keeps one Redis list per bidder, each entry a CBOR encoded round.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	Address  string
	Password string
	DB       int
	Prefix   string
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisStoreWithClient(client, opts.Prefix), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "auction"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(bidderID string) string {
	return fmt.Sprintf("%s:rounds:%s", r.prefix, bidderID)
}

// wireRound is the compact on-the-wire form of a round.
type wireRound struct {
	MyBid                 int `cbor:"1,keyasint"`
	MyWonQuantity         int `cbor:"2,keyasint"`
	OpponentBid           int `cbor:"3,keyasint"`
	OpponentWonQuantity   int `cbor:"4,keyasint"`
	OpponentRemainingCash int `cbor:"5,keyasint"`
}

func encodeRound(r model.RoundResult) ([]byte, error) {
	return cbor.Marshal(wireRound(r))
}

func decodeRound(data []byte) (model.RoundResult, error) {
	var w wireRound
	if err := cbor.Unmarshal(data, &w); err != nil {
		return model.RoundResult{}, err
	}
	return model.RoundResult(w), nil
}

func (r *RedisStore) Append(ctx context.Context, bidderID string, result model.RoundResult) error {
	payload, err := encodeRound(result)
	if err != nil {
		return fmt.Errorf("encode round result: %w", err)
	}
	if err := r.client.RPush(ctx, r.key(bidderID), payload).Err(); err != nil {
		return fmt.Errorf("rpush round result: %w", err)
	}
	return nil
}

func (r *RedisStore) History(ctx context.Context, bidderID string) ([]model.RoundResult, error) {
	entries, err := r.client.LRange(ctx, r.key(bidderID), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("lrange round history: %w", err)
	}

	out := make([]model.RoundResult, 0, len(entries))
	for i, e := range entries {
		round, err := decodeRound([]byte(e))
		if err != nil {
			return nil, fmt.Errorf("decode round %d: %w", i, err)
		}
		out = append(out, round)
	}
	return out, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
