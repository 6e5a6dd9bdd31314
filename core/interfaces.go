//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"

	"github.com/gorilla/websocket"
)

type CharacterService interface {
	Create(ctx context.Context, input NewCharacter) (Character, error)
	Edit(ctx context.Context, name, secret string, patch CharacterPatch) (Character, error)
	Delete(ctx context.Context, name, secret string) (Character, error)

	Show(ctx context.Context, name string) (Character, error)
	List(ctx context.Context) ([]Character, error)
	Count(ctx context.Context) (int64, error)
}

type GuardService interface {
	Authorize(ctx context.Context, name, secret string) error
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type SocketManager interface {
	Subscribe(conn *websocket.Conn)
	Unsubscribe(conn *websocket.Conn)
	Count() int64
}
