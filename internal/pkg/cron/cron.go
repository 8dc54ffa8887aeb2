package cron

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/robfig/cron/v3"
)

// Cron 表达式（秒级）
var (
	EveryMinuteSpec      = "0 * * * * *"
	EveryFiveMinutesSpec = "0 */5 * * * *"
	HourlySpec           = "0 0 * * * *"
	DailySpec            = "0 0 0 * * *"
	DailyAt              = func(hour, minute, second int) string {
		return fmt.Sprintf("%d %d %d * * *", second, minute, hour)
	}
)

var _ transport.Server = (*Server)(nil)

// Server 定时任务服务，作为 kratos transport.Server 随应用启停
type Server struct {
	cron *cron.Cron
	log  *log.Helper
}

func NewServer(logger log.Logger) *Server {
	return &Server{
		cron: cron.New(cron.WithSeconds()),
		log:  log.NewHelper(log.With(logger, "module", "pkg/cron")),
	}
}

// AddJob 注册任务，表达式非法时返回错误
func (s *Server) AddJob(job Job) error {
	if _, err := s.cron.AddJob(job.Spec(), s.makeSafe(job)); err != nil {
		return fmt.Errorf("cron: register %s: %w", job.Name(), err)
	}
	s.log.Infof("[Cron] registered job [%s] spec [%s]: %s", job.Name(), job.Spec(), job.Description())
	return nil
}

// Len 已注册的任务数
func (s *Server) Len() int {
	return len(s.cron.Entries())
}

// makeSafe 封装 Recovery 和日志记录
func (s *Server) makeSafe(j Job) cron.Job {
	return cron.FuncJob(func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Errorf("[Cron] job %s panicked: %v\n%s", j.Name(), r, debug.Stack())
			}
		}()

		start := time.Now()
		j.Run()
		s.log.Debugf("[Cron] job %s finished in %v", j.Name(), time.Since(start))
	})
}

func (s *Server) Start(ctx context.Context) error {
	s.cron.Start()
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	<-s.cron.Stop().Done()
	return nil
}
