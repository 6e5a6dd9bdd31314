//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/JayByRP/shield/core"
	"github.com/JayByRP/shield/x/character"
	"github.com/JayByRP/shield/x/guard"
	"github.com/JayByRP/shield/x/socket"
	"github.com/JayByRP/shield/x/util"
)

var characterServiceProvider = wire.NewSet(
	character.NewService,
	character.NewRepository,
	guard.NewService,
	guard.NewRepository,
	socket.NewPublisher,
)

func SetupCharacterService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config util.Config) core.CharacterService {
	wire.Build(characterServiceProvider)
	return nil
}

func SetupCharacterHandler(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config util.Config) character.Handler {
	wire.Build(character.NewHandler, characterServiceProvider)
	return nil
}

func SetupSocketManager(rdb *redis.Client) core.SocketManager {
	wire.Build(socket.NewManager)
	return nil
}

func SetupSocketHandler(manager core.SocketManager) socket.Handler {
	wire.Build(socket.NewHandler)
	return nil
}
