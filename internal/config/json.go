package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON representation of
// [StructuredConfig]. Durations accept both strings ("30s") and
// nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		Version          string   `json:"version"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		GRPCAddress        string   `json:"grpc_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		AuthRateLimit      float64  `json:"auth_rate_limit"`
		AuthRateBurst      int      `json:"auth_rate_burst"`
	} `json:"server,omitempty"`

	Access struct {
		Default string   `json:"default"`
		Rules   []string `json:"rules"`
	} `json:"access,omitempty"`

	Seed struct {
		AdminUsername string `json:"admin_username"`
		AdminPassword string `json:"admin_password"`
		DemoProducts  bool   `json:"demo_products"`
	} `json:"seed,omitempty"`

	Upstream struct {
		MenuURL string   `json:"menu_url"`
		Timeout Duration `json:"timeout"`
	} `json:"upstream,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			Version:          jsonCfg.App.Version,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       jsonCfg.Storage.DB.Driver,
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			GRPCAddress:        jsonCfg.Server.GRPCAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
			AuthRateLimit:      jsonCfg.Server.AuthRateLimit,
			AuthRateBurst:      jsonCfg.Server.AuthRateBurst,
		},
		Access: Access{
			DefaultRequirement: jsonCfg.Access.Default,
			Rules:              jsonCfg.Access.Rules,
		},
		Seed: Seed{
			AdminUsername: jsonCfg.Seed.AdminUsername,
			AdminPassword: jsonCfg.Seed.AdminPassword,
			DemoProducts:  jsonCfg.Seed.DemoProducts,
		},
		Upstream: Upstream{
			MenuURL: jsonCfg.Upstream.MenuURL,
			Timeout: time.Duration(jsonCfg.Upstream.Timeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
