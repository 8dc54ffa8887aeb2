package auth

import "strings"

// DefaultAdminDomain 管理员邮箱域名
const DefaultAdminDomain = "admin.com.br"

// EmailClaim 请求体中声明的邮箱，管理员校验读取的是请求体而非令牌主体
type EmailClaim interface {
	GetEmail() string
}

// Gate 管理员授权判断
type Gate struct {
	domain string
}

func NewGate(domain string) *Gate {
	if domain == "" {
		domain = DefaultAdminDomain
	}
	return &Gate{domain: domain}
}

// IsAdmin 取邮箱 @ 之后的第一段与管理员域名比较
func (g *Gate) IsAdmin(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) < 2 {
		return false
	}
	return parts[1] == g.domain
}
