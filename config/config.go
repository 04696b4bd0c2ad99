package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	Storage   Storage         `mapstructure:"STORAGE" json:"storage" yaml:"storage"`
	Database  Database        `mapstructure:"DATABASE" json:"database" yaml:"database"`
	MongoDB   MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Badger    Badger          `mapstructure:"BADGER" json:"badger" yaml:"badger"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	RateLimit RateLimit       `mapstructure:"RATE_LIMIT" json:"rate_limit" yaml:"rate_limit"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
	Cron      Cron            `mapstructure:"CRON" json:"cron" yaml:"cron"`
}
