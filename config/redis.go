package config

type Redis struct {
	Enabled  bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Host     string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port     int    `mapstructure:"PORT" json:"port" yaml:"port"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	DB       int    `mapstructure:"DB" json:"db" yaml:"db"`
}

// RateLimit 寫入類端點的每 IP 限流（需要 Redis）
type RateLimit struct {
	Enabled   bool  `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Limit     int   `mapstructure:"LIMIT" json:"limit" yaml:"limit"`
	WindowSec int64 `mapstructure:"WINDOW_SEC" json:"window_sec" yaml:"window_sec"`
}
