package store

import "time"

// RevocationStore 撤销令牌存储，必须并发安全；Revoke 返回后，后续 IsRevoked 必须可见
type RevocationStore interface {
	// Revoke 撤销令牌，重复撤销无副作用
	Revoke(token string, expiresAt time.Time)
	// IsRevoked 判断令牌是否已撤销
	IsRevoked(token string) bool
	// Sweep 清理自身已过期的令牌，返回清理数量
	Sweep(now time.Time) int
	// Len 当前记录数
	Len() int
}
