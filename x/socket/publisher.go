package socket

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/JayByRP/shield/core"
)

type publisher struct {
	rdb *redis.Client
}

// NewPublisher creates the publisher the character service hands events to
func NewPublisher(rdb *redis.Client) core.Publisher {
	return &publisher{rdb}
}

// Publish serializes the event and pushes it onto the roster channel
func (p *publisher) Publish(ctx context.Context, event core.Event) error {
	ctx, span := tracer.Start(ctx, "Socket.Publisher.Publish")
	defer span.End()

	jsonstr, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = p.rdb.Publish(ctx, core.RosterChannel, jsonstr).Err()
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
