package data

import (
	"context"
	"errors"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

// slowQueryThreshold 超过该耗时的 SQL 以 warn 级别输出
const slowQueryThreshold = 200 * time.Millisecond

// GormLogger 将 GORM 日志转发到 Kratos logger
type GormLogger struct {
	logger log.Logger
	level  glogger.LogLevel
}

func NewGormLogger(l log.Logger) glogger.Interface {
	return &GormLogger{
		logger: log.With(l, "module", "data/gorm"),
		level:  glogger.Info,
	}
}

func (l *GormLogger) LogMode(level glogger.LogLevel) glogger.Interface {
	return &GormLogger{logger: l.logger, level: level}
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= glogger.Info {
		log.WithContext(ctx, l.logger).Log(log.LevelInfo, "msg", msg, "data", data)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= glogger.Warn {
		log.WithContext(ctx, l.logger).Log(log.LevelWarn, "msg", msg, "data", data)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= glogger.Error {
		log.WithContext(ctx, l.logger).Log(log.LevelError, "msg", msg, "data", data)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= glogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	logger := log.WithContext(ctx, l.logger)
	ms := float64(elapsed.Nanoseconds()) / 1e6

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logger.Log(log.LevelError, "kind", "sql", "elapsed", ms, "rows", rows, "sql", sql, "err", err)
	case elapsed > slowQueryThreshold:
		logger.Log(log.LevelWarn, "kind", "sql", "elapsed", ms, "rows", rows, "sql", sql, "slow", true)
	default:
		logger.Log(log.LevelDebug, "kind", "sql", "elapsed", ms, "rows", rows, "sql", sql)
	}
}
