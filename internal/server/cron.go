package server

import (
	"github.com/go-kratos/kratos/v2/log"
	"github.com/sober-studio/medtrack/internal/job"
	"github.com/sober-studio/medtrack/internal/pkg/cron"
)

func NewCronServer(
	logger log.Logger,
	sweep *job.RevocationSweepJob,
) (*cron.Server, error) {
	srv := cron.NewServer(logger)

	// 未配置 sweep_spec 时不清理撤销表
	if sweep.Enabled() {
		if err := srv.AddJob(sweep); err != nil {
			return nil, err
		}
	}

	return srv, nil
}
