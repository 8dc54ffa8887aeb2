package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap is the root of configs/config.yaml.
type Bootstrap struct {
	Server *Server `json:"server"`
	Data   *Data   `json:"data"`
	App    *App    `json:"app"`
}

type Server struct {
	Http *Server_HTTP `json:"http"`
}

type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

type Data struct {
	Database *Data_Database `json:"database"`
}

type Data_Database struct {
	Driver string `json:"driver"`
	Source string `json:"source"`
	// Replicas are read-only DSNs routed through dbresolver.
	Replicas        []string  `json:"replicas"`
	MaxIdleConns    int32     `json:"max_idle_conns"`
	MaxOpenConns    int32     `json:"max_open_conns"`
	ConnMaxLifetime *Duration `json:"conn_max_lifetime"`
	AutoMigrate     bool      `json:"auto_migrate"`
}

type App struct {
	Name     string    `json:"name"`
	Version  string    `json:"version"`
	Env      string    `json:"env"`
	WorkerId int64     `json:"worker_id"`
	Auth     *App_Auth `json:"auth"`
}

type App_Auth struct {
	Jwt *App_Auth_JWT `json:"jwt"`
	// PublicPaths are operations reachable without a bearer token.
	PublicPaths []string `json:"public_paths"`
	// AdminPaths are operations that additionally pass the admin gate.
	AdminPaths  []string             `json:"admin_paths"`
	AdminDomain string               `json:"admin_domain"`
	Revocation  *App_Auth_Revocation `json:"revocation"`
}

// App_Auth_JWT 令牌有效期固定为两小时，不可配置
type App_Auth_JWT struct {
	Secret string `json:"secret"`
}

type App_Auth_Revocation struct {
	// SweepSpec is a six-field cron expression; empty disables the sweep.
	SweepSpec string `json:"sweep_spec"`
}

// Duration decodes "90s"/"2h" strings or integer seconds.
type Duration struct {
	time.Duration
}

func NewDuration(d time.Duration) *Duration { return &Duration{Duration: d} }

// AsDuration returns zero for a nil receiver.
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value * float64(time.Second))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("conf: invalid duration %s", string(b))
	}
	return nil
}
