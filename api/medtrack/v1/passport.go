package v1

import (
	"context"

	"github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationPassportLogin  = "/medtrack.v1.Passport/Login"
	OperationPassportLogout = "/medtrack.v1.Passport/Logout"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return check(r) }

type LoginReply struct {
	Token string `json:"token"`
}

type LogoutRequest struct{}

type PassportHTTPServer interface {
	Login(context.Context, *LoginRequest) (*LoginReply, error)
	Logout(context.Context, *LogoutRequest) (*MessageReply, error)
}

func RegisterPassportHTTPServer(s *http.Server, srv PassportHTTPServer) {
	r := s.Route("/")
	r.POST("/login", handler(OperationPassportLogin, statusOK, bindBody, srv.Login))
	r.POST("/logout", handler(OperationPassportLogout, statusOK, bindNone, srv.Logout))
}
