package env

import (
	"fmt"
	"sync"
)

type Type string

const (
	Dev  Type = "dev"
	Test Type = "test"
	Prod Type = "prod"
)

var (
	current = Dev
	once    sync.Once
)

// Parse 校验环境名，空值视为 dev
func Parse(e string) (Type, error) {
	switch t := Type(e); t {
	case "":
		return Dev, nil
	case Dev, Test, Prod:
		return t, nil
	default:
		return "", fmt.Errorf("env: unknown environment %q", e)
	}
}

// Init 在 main.go 中被调用一次
func Init(e Type) {
	once.Do(func() {
		current = e
	})
}

func IsDev() bool  { return current == Dev }
func IsTest() bool { return current == Test }
func IsProd() bool { return current == Prod }
func Get() Type    { return current }
