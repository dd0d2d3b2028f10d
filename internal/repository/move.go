package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jdecked/cs152-final/internal/entity"
)

var ErrMoveNotCached = errors.New("move not cached")

// MoveQuery identifies a search: the same query always yields the same answer.
type MoveQuery struct {
	Rules  entity.Rules
	Depth  int
	Player entity.Mark
	Board  entity.Board
}

type CachedMove struct {
	Move  entity.Move      `json:"move"`
	State entity.GameState `json:"state"`
}

type MoveRepository interface {
	Save(ctx context.Context, query MoveQuery, move CachedMove) error
	Get(ctx context.Context, query MoveQuery) (CachedMove, error)
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMove) Save(ctx context.Context, query MoveQuery, move CachedMove) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, moveKey(query), moveJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) Get(ctx context.Context, query MoveQuery) (CachedMove, error) {
	response, err := that.client.Get(ctx, moveKey(query)).Result()
	if errors.Is(err, redis.Nil) {
		return CachedMove{}, ErrMoveNotCached
	}

	if err != nil {
		return CachedMove{}, fmt.Errorf("failed to get move: %w", err)
	}

	var cached CachedMove
	if err = json.Unmarshal([]byte(response), &cached); err != nil {
		return CachedMove{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return cached, nil
}

// moveKey - e.g. "move:3x3k3:6:1:3x3:1-2------".
func moveKey(query MoveQuery) string {
	return "move:" + query.Rules.String() + ":" + strconv.Itoa(query.Depth) + ":" + query.Player.String() + ":" + query.Board.Key()
}
