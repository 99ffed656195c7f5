package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/repositories/memstore"
	"github.com/fsdevblog/shortlinks/internal/repositories/sql"
	"github.com/fsdevblog/shortlinks/internal/slug"
)

type ServiceType string

const (
	ServiceTypeSQL      ServiceType = "sql"
	ServiceTypeInMemory ServiceType = "inMemory"
)

type Services struct {
	LinkService *LinkService
	PingService *PingService
}

// Factory собирает сервисный слой поверх открытого соединения conn.
// Для ServiceTypeSQL ожидается *gorm.DB, для ServiceTypeInMemory *db.MemoryStorage.
func Factory(conn any, sType ServiceType, opts ...func(*LinkServiceOptions)) (*Services, error) {
	switch sType {
	case ServiceTypeSQL:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		return getSQLServices(gormDB, opts...), nil
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		return getInMemoryServices(store, opts...), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}

func getSQLServices(conn *gorm.DB, opts ...func(*LinkServiceOptions)) *Services {
	return &Services{
		LinkService: NewLinkService(sql.NewLinkRepo(conn), sql.NewVisitRepo(conn), slug.New(), opts...),
		PingService: NewPingService(db.GormPinger{DB: conn}),
	}
}

func getInMemoryServices(store *db.MemoryStorage, opts ...func(*LinkServiceOptions)) *Services {
	return &Services{
		LinkService: NewLinkService(memstore.NewLinkRepo(store), memstore.NewVisitRepo(store), slug.New(), opts...),
		PingService: NewPingService(store),
	}
}
