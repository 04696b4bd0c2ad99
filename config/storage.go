package config

// Storage 選擇組織樹的儲存後端：file / sql / mongo / badger
type Storage struct {
	Driver   string `mapstructure:"DRIVER" json:"driver" yaml:"driver"`
	FilePath string `mapstructure:"FILE_PATH" json:"file_path" yaml:"file_path"`
}

// Database 關聯式後端（sqlite 或 pgx）
type Database struct {
	Driver       string `mapstructure:"DRIVER" json:"driver" yaml:"driver"`
	DSN          string `mapstructure:"DSN" json:"dsn" yaml:"dsn"`
	MaxOpenConns int    `mapstructure:"MAX_OPEN_CONNS" json:"max_open_conns" yaml:"max_open_conns"`
}

type Badger struct {
	Path     string `mapstructure:"PATH" json:"path" yaml:"path"`
	InMemory bool   `mapstructure:"IN_MEMORY" json:"in_memory" yaml:"in_memory"`
}
