package model

import "time"

// RevokedToken 被撤销的令牌
type RevokedToken struct {
	TokenStr  string    // JWT 原文
	ExpiresAt time.Time // 令牌自身的过期时间，零值表示无法解析
	RevokedAt time.Time // 撤销时间
}

// Expired 令牌在 now 时刻是否已自然过期，过期时间未知的记录永不过期
func (t *RevokedToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}
