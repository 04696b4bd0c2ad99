package config

type Cron struct {
	IntegrityEnabled bool `mapstructure:"INTEGRITY_ENABLED" json:"integrity_enabled" yaml:"integrity_enabled"`
	// 含秒的 cron 表達式，例如 "0 */10 * * * *"
	IntegritySpec string `mapstructure:"INTEGRITY_SPEC" json:"integrity_spec" yaml:"integrity_spec"`
}
