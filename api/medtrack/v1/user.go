package v1

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationUserCreateUser = "/medtrack.v1.User/CreateUser"
	OperationUserListUsers  = "/medtrack.v1.User/ListUsers"
	OperationUserGetUser    = "/medtrack.v1.User/GetUser"
	OperationUserUpdateUser = "/medtrack.v1.User/UpdateUser"
	OperationUserDeleteUser = "/medtrack.v1.User/DeleteUser"
)

type CreateUserRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	BirthDate string `json:"birthDate" validate:"required,date"`
}

func (r *CreateUserRequest) Validate() error { return check(r) }

// ListUsersRequest 管理员校验读取 body 中的 email
type ListUsersRequest struct {
	Email string `json:"email"`
}

func (r *ListUsersRequest) GetEmail() string { return r.Email }

type UpdateUserRequest struct {
	ID        int64  `json:"id" validate:"gt=0"`
	Name      string `json:"name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password"`
	BirthDate string `json:"birthDate" validate:"omitempty,date"`
}

func (r *UpdateUserRequest) Validate() error { return check(r) }

// UserReply 不返回密码哈希
type UserReply struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	BirthDate time.Time `json:"birthDate"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListUsersReply struct {
	Users []*UserReply `json:"users"`
}

type UserHTTPServer interface {
	CreateUser(context.Context, *CreateUserRequest) (*UserReply, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersReply, error)
	GetUser(context.Context, *IDRequest) (*UserReply, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*UserReply, error)
	DeleteUser(context.Context, *IDRequest) (*UserReply, error)
}

func RegisterUserHTTPServer(s *http.Server, srv UserHTTPServer) {
	r := s.Route("/")
	r.POST("/user", handler(OperationUserCreateUser, statusCreated, bindBody, srv.CreateUser))
	r.GET("/users", handler(OperationUserListUsers, statusOK, bindBody, srv.ListUsers))
	r.GET("/user/{id}", handler(OperationUserGetUser, statusOK, bindVars, srv.GetUser))
	r.PUT("/user/{id}", handler(OperationUserUpdateUser, statusOK, bindBodyAndVars, srv.UpdateUser))
	r.DELETE("/user/{id}", handler(OperationUserDeleteUser, statusOK, bindVars, srv.DeleteUser))
}
