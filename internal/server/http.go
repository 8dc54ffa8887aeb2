package server

import (
	v1 "github.com/sober-studio/medtrack/api/medtrack/v1"
	"github.com/sober-studio/medtrack/internal/conf"
	"github.com/sober-studio/medtrack/internal/pkg/auth"
	"github.com/sober-studio/medtrack/internal/pkg/debug"
	"github.com/sober-studio/medtrack/internal/pkg/render"
	"github.com/sober-studio/medtrack/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/middleware/validate"
	"github.com/go-kratos/kratos/v2/transport/http"
)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(
	c *conf.Server,
	passport *service.PassportService,
	user *service.UserService,
	medication *service.MedicationService,
	prescription *service.PrescriptionService,
	history *service.HistoryService,
	tokenService auth.TokenService,
	gate *auth.Gate,
	access *auth.PathAccessConfig,
	logger log.Logger,
) *http.Server {

	// 认证在参数校验之前：未认证的请求一律 401/403
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
			auth.Middleware(tokenService, gate, access),
			validate.Validator(),
		),
		http.Filter(debug.Filter),
		http.RequestDecoder(render.RequestDecoder),
		http.ResponseEncoder(render.ResponseEncoder),
		http.ErrorEncoder(render.ErrorEncoder),
	}

	if c != nil && c.Http != nil {
		if c.Http.Network != "" {
			opts = append(opts, http.Network(c.Http.Network))
		}
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != nil {
			opts = append(opts, http.Timeout(c.Http.Timeout.AsDuration()))
		}
	}

	srv := http.NewServer(opts...)
	v1.RegisterPassportHTTPServer(srv, passport)
	v1.RegisterUserHTTPServer(srv, user)
	v1.RegisterMedicationHTTPServer(srv, medication)
	v1.RegisterPrescriptionHTTPServer(srv, prescription)
	v1.RegisterHistoryHTTPServer(srv, history)

	return srv
}
