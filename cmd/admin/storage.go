package main

import (
	accapp "GameAdmin/internal/account/app"
	accmemory "GameAdmin/internal/account/infra/memory"
	accrepo "GameAdmin/internal/account/infra/repo"
	bapp "GameAdmin/internal/building/app"
	bmemory "GameAdmin/internal/building/infra/persistence/memory"
	bmongo "GameAdmin/internal/building/infra/persistence/mongodb"
	bmysql "GameAdmin/internal/building/infra/persistence/mysql"
	"GameAdmin/internal/shared/infrastructure/db"
	"GameAdmin/internal/shared/infrastructure/mongo"
	"GameAdmin/internal/shared/serverconfig"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type storage struct {
	users   accapp.UserRepo
	history accapp.LoginHistoryRepo
	last    accapp.LoginLastRepo
	configs bapp.ConfigRepo
	closers []func()
}

func (s *storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openStorage 按 storage.driver 组装仓储：账号数据除 memory 模式外都在 MySQL。
func openStorage(cfg serverconfig.Config, log *zap.Logger) (*storage, error) {
	s := &storage{}
	switch cfg.Storage.Driver {
	case serverconfig.DriverMemory, serverconfig.DriverMySQL, serverconfig.DriverMongoDB:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Driver == serverconfig.DriverMemory {
		store := accmemory.NewStore()
		s.users, s.history, s.last = store, store, store.LastLogins()
		s.configs = bmemory.NewConfigRepo()
		log.Warn("using in-memory storage, data is lost on restart")
		return s, nil
	}

	gormDB, err := db.Open(cfg.MySQL)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	s.closers = append(s.closers, func() { _ = db.Close(gormDB) })
	if err = migrate(gormDB, cfg); err != nil {
		s.Close()
		return nil, err
	}
	s.users = accrepo.NewUserRepo(gormDB)
	s.history = accrepo.NewLoginHistoryRepo(gormDB)
	s.last = accrepo.NewLoginLastRepo(gormDB)

	switch cfg.Storage.Driver {
	case serverconfig.DriverMySQL:
		s.configs = bmysql.NewConfigRepo(gormDB)
	case serverconfig.DriverMongoDB:
		client, err := mongo.Open(cfg.MongoDB, log)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("open mongodb: %w", err)
		}
		s.closers = append(s.closers, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		})
		repo := bmongo.NewConfigRepo(client.Database(cfg.MongoDB.Database))
		ctx, cancel := context.WithTimeout(context.Background(), mongo.ConnectTimeout(cfg.MongoDB))
		err = repo.EnsureIndexes(ctx)
		cancel()
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("ensure mongodb indexes: %w", err)
		}
		s.configs = repo
	}
	return s, nil
}

func migrate(gormDB *gorm.DB, cfg serverconfig.Config) error {
	if !cfg.MySQL.AutoMigrate {
		return nil
	}
	if err := accrepo.AutoMigrate(gormDB); err != nil {
		return fmt.Errorf("migrate account tables: %w", err)
	}
	if cfg.Storage.Driver == serverconfig.DriverMySQL {
		if err := bmysql.AutoMigrate(gormDB); err != nil {
			return fmt.Errorf("migrate building tables: %w", err)
		}
	}
	return nil
}
