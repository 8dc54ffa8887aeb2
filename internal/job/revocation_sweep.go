package job

import (
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sober-studio/medtrack/internal/conf"
	"github.com/sober-studio/medtrack/internal/pkg/auth/store"
	"github.com/sober-studio/medtrack/internal/pkg/cron"
)

var _ cron.Job = (*RevocationSweepJob)(nil)

// RevocationSweepJob 清理已自然过期的撤销记录；未配置表达式时不注册
type RevocationSweepJob struct {
	cron.BaseJob
	store store.RevocationStore
	now   func() time.Time
	log   *log.Helper
}

func NewRevocationSweepJob(c *conf.App, store store.RevocationStore, logger log.Logger) *RevocationSweepJob {
	spec := ""
	if c.Auth != nil && c.Auth.Revocation != nil {
		spec = c.Auth.Revocation.SweepSpec
	}
	return &RevocationSweepJob{
		BaseJob: cron.BaseJob{
			JobName: "RevocationSweepJob",
			JobSpec: spec,
			JobDesc: "evict revoked tokens past their own expiry",
		},
		store: store,
		now:   time.Now,
		log:   log.NewHelper(log.With(logger, "module", "job/revocation_sweep")),
	}
}

// Enabled 是否配置了清理表达式
func (j *RevocationSweepJob) Enabled() bool {
	return j.JobSpec != ""
}

func (j *RevocationSweepJob) Run() {
	removed := j.store.Sweep(j.now())
	j.log.Infof("swept %d revoked tokens, %d remaining", removed, j.store.Len())
}
