package serverconfig

import "time"

type Config struct {
	HTTPServer HTTPServerConfig `yaml:"httpserver" mapstructure:"httpserver"`
	GRPCServer GRPCServerConfig `yaml:"grpcserver" mapstructure:"grpcserver"`
	MySQL      MySQLConfig      `yaml:"mysql" mapstructure:"mysql"`
	MongoDB    MongoDBConfig    `yaml:"mongodb" mapstructure:"mongodb"`
	Storage    StorageConfig    `yaml:"storage" mapstructure:"storage"`
	Security   SecurityConfig   `yaml:"security" mapstructure:"security"`
	RateLimit  RateLimitConfig  `yaml:"ratelimit" mapstructure:"ratelimit"`
	Seed       SeedConfig       `yaml:"seed" mapstructure:"seed"`
	Panel      PanelConfig      `yaml:"panel" mapstructure:"panel"`
	Snowflake  SnowflakeConfig  `yaml:"snowflake" mapstructure:"snowflake"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

type HTTPServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
	// 允许跨域访问 API 的来源，空表示只允许同源
	AllowOrigins []string `yaml:"allow_origins" mapstructure:"allow_origins"`
}

// GRPCServerConfig 只承载健康检查，Port 为 0 时不启动。
type GRPCServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

type MySQLConfig struct {
	Host        string `yaml:"host" mapstructure:"host"`
	Port        int    `yaml:"port" mapstructure:"port"`
	User        string `yaml:"user" mapstructure:"user"`
	Password    string `yaml:"password" mapstructure:"password"`
	DBName      string `yaml:"dbname" mapstructure:"dbname"`
	Charset     string `yaml:"charset" mapstructure:"charset"`
	MaxIdle     int    `yaml:"max_idle" mapstructure:"max_idle"`
	MaxConn     int    `yaml:"max_conn" mapstructure:"max_conn"`
	AutoMigrate bool   `yaml:"auto_migrate" mapstructure:"auto_migrate"`
}

type MongoDBConfig struct {
	URI             string `yaml:"uri" mapstructure:"uri"`
	Database        string `yaml:"database" mapstructure:"database"`
	ConnectTimeoutS int    `yaml:"connect_timeout_s" mapstructure:"connect_timeout_s"`
}

const (
	DriverMySQL   = "mysql"
	DriverMongoDB = "mongodb"
	DriverMemory  = "memory"
)

// StorageConfig 选择建筑配置的存储：mysql / mongodb / memory。
// 账号数据在 memory 模式下放内存，其余情况都在 MySQL。
type StorageConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"`
}

type SecurityConfig struct {
	JWTSecret string        `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" mapstructure:"rps"`
	Burst int     `yaml:"burst" mapstructure:"burst"`
}

type SeedConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

type PanelConfig struct {
	CookieSecure bool `yaml:"cookie_secure" mapstructure:"cookie_secure"`
}

type SnowflakeConfig struct {
	NodeID int64 `yaml:"node_id" mapstructure:"node_id"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}
