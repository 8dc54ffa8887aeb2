package biz

import (
	"context"
	"sync"
)

// memUserRepo 内存实现，仅用于用例测试
type memUserRepo struct {
	mu    sync.Mutex
	next  int64
	users map[int64]*User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*User)}
}

func (r *memUserRepo) CreateUser(_ context.Context, u *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	c := *u
	c.ID = r.next
	r.users[c.ID] = &c
	return &c, nil
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memUserRepo) GetUserByID(_ context.Context, id int64) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *memUserRepo) ListActiveUsers(context.Context) ([]*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*User
	for _, u := range r.users {
		if u.Status {
			c := *u
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memUserRepo) UpdateActiveUser(_ context.Context, in *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[in.ID]
	if !ok || !u.Status {
		return nil, ErrUserNotFound
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if in.PasswordHash != "" {
		u.PasswordHash = in.PasswordHash
	}
	if !in.BirthDate.IsZero() {
		u.BirthDate = in.BirthDate
	}
	c := *u
	return &c, nil
}

func (r *memUserRepo) DeactivateUser(_ context.Context, id int64) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || !u.Status {
		return nil, ErrUserNotFound
	}
	u.Status = false
	c := *u
	return &c, nil
}
