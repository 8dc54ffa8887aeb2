package data

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sober-studio/medtrack/internal/biz"
	"github.com/sober-studio/medtrack/internal/conf"
	"github.com/sober-studio/medtrack/internal/data/model"
	"github.com/sober-studio/medtrack/internal/pkg/idgen"
	"github.com/sober-studio/medtrack/internal/pkg/idgen/snowflake"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewDB,
	NewIDGenerator,
	NewUserRepo,
	NewMedicationRepo,
	NewPrescriptionRepo,
	NewHistoryRepo,
	wire.Bind(new(biz.Transaction), new(*Data)),
)

// Data .
// 注意：所有需要关闭的资源必须在 cleanup 中显式处理
type Data struct {
	db *gorm.DB
}

// NewData .
func NewData(logger log.Logger, db *gorm.DB, g idgen.IDGenerator) (*Data, func(), error) {
	model.SetIDGenerator(g)

	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
		sqlDB, err := db.DB()
		if err != nil {
			log.NewHelper(logger).Error(err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.NewHelper(logger).Error(err)
		}
	}

	return &Data{db: db}, cleanup, nil
}

func dialectorFor(driver, source string) gorm.Dialector {
	switch driver {
	case "mysql":
		return mysql.Open(source)
	case "sqlite":
		return sqlite.Open(source)
	default:
		// 默认使用 Postgres
		return postgres.Open(source)
	}
}

// NewDB 初始化数据库 (GORM)
func NewDB(c *conf.Data, l log.Logger) (*gorm.DB, error) {
	if c == nil || c.Database == nil {
		return nil, fmt.Errorf("data: database is not configured")
	}

	db, err := gorm.Open(dialectorFor(c.Database.Driver, c.Database.Source), &gorm.Config{
		Logger:         NewGormLogger(l),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("data: failed opening connection to database: %w", err)
	}

	// 只读副本
	if len(c.Database.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(c.Database.Replicas))
		for _, dsn := range c.Database.Replicas {
			replicas = append(replicas, dialectorFor(c.Database.Driver, dsn))
		}
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, fmt.Errorf("data: failed registering replicas: %w", err)
		}
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("data: failed to get sql DB from gorm: %w", err)
	}

	if c.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(int(c.Database.MaxIdleConns))
	} else {
		sqlDB.SetMaxIdleConns(10)
	}

	if c.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(int(c.Database.MaxOpenConns))
	} else {
		sqlDB.SetMaxOpenConns(100)
	}

	if c.Database.ConnMaxLifetime != nil {
		sqlDB.SetConnMaxLifetime(c.Database.ConnMaxLifetime.AsDuration())
	} else {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if c.Database.AutoMigrate {
		if err := db.AutoMigrate(model.Models()...); err != nil {
			return nil, fmt.Errorf("data: auto migrate: %w", err)
		}
	}

	return db, nil
}

// contextTxKey 事务在 Context 中的 Key
type contextTxKey struct{}

// InTx 事务包装器实现 (biz.Transaction 接口)
func (d *Data) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// 已处于事务中则直接复用
	if _, ok := ctx.Value(contextTxKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务对象注入 Context
		ctx = context.WithValue(ctx, contextTxKey{}, tx)
		return fn(ctx)
	})
}

// DB 返回 GORM 实例，处于事务中时返回事务对象
func (d *Data) DB(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(contextTxKey{}).(*gorm.DB)
	if ok {
		return tx
	}
	return d.db.WithContext(ctx)
}

// NewIDGenerator 初始化 ID 生成器
func NewIDGenerator(app *conf.App) idgen.IDGenerator {
	return snowflake.NewSnowflake(app.WorkerId)
}
