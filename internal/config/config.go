// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找，敏感项可由环境变量（或 .env 文件）覆盖
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库
	"github.com/joho/godotenv"   // .env 文件加载
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName     string `toml:"appName"`     // 应用名称，用于日志标识等
	Host        string `toml:"host"`        // 服务器监听地址，如 "0.0.0.0"
	Port        int    `toml:"port"`        // 服务器监听端口，如 8000
	Mode        string `toml:"mode"`        // 运行模式：dev 或 release
	Locale      string `toml:"locale"`      // 参数校验提示语言：en 或 zh
	TLSRedirect bool   `toml:"tlsRedirect"` // 是否将 HTTP 请求重定向到 HTTPS
}

// MysqlConfig MySQL 数据库连接配置
type MysqlConfig struct {
	Host         string `toml:"host"`         // MySQL 服务器地址
	Port         int    `toml:"port"`         // MySQL 端口，默认 3306
	User         string `toml:"user"`         // 数据库用户名
	Password     string `toml:"password"`     // 数据库密码
	DatabaseName string `toml:"databaseName"` // 数据库名称
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Host     string `toml:"host"`     // Redis 服务器地址
	Port     int    `toml:"port"`     // Redis 端口，默认 6379
	Password string `toml:"password"` // Redis 密码，无密码留空
	Db       int    `toml:"db"`       // Redis 数据库编号，默认 0
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// KafkaConfig 活动事件投递配置
type KafkaConfig struct {
	MessageMode   string        `toml:"messageMode"`   // "kafka" 投递到 Kafka，其他值仅写日志
	HostPort      string        `toml:"hostPort"`      // Kafka 服务器地址，如 "localhost:9092"
	ActivityTopic string        `toml:"activityTopic"` // 活动事件主题
	Partition     int           `toml:"partition"`     // 自动创建主题时的分区数
	Timeout       time.Duration `toml:"timeout"`       // 写入超时
}

// JWTConfig JWT 认证配置
type JWTConfig struct {
	Secret             string `toml:"secret"`             // JWT 签名密钥，建议 32 字符以上
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // Access Token 有效期（分钟）
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // Refresh Token 有效期（小时）
}

// SnowflakeConfig 雪花算法配置
type SnowflakeConfig struct {
	MachineID int64 `toml:"machineId"` // 节点 ID，范围 0-1023
}

// RateLimitConfig 写操作限流配置
type RateLimitConfig struct {
	RequestsPerSecond float64 `toml:"requestsPerSecond"` // 每个客户端每秒允许的请求数
	Burst             int     `toml:"burst"`             // 突发容量
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig      `toml:"mainConfig"`
	MysqlConfig     `toml:"mysqlConfig"`
	RedisConfig     `toml:"redisConfig"`
	LogConfig       `toml:"logConfig"`
	KafkaConfig     `toml:"kafkaConfig"`
	JWTConfig       `toml:"jwtConfig"`
	SnowflakeConfig `toml:"snowflakeConfig"`
	RateLimitConfig `toml:"rateLimitConfig"`
}

// config 全局配置单例，延迟加载
var config *Config

// searchPaths 候选配置文件路径（优先加载本地配置）
var searchPaths = []string{
	"configs/config_local.toml",
	"configs/config.toml",
	"../../configs/config_local.toml", // 从 cmd 子目录运行时的路径
	"../../configs/config.toml",
}

// Default 返回带默认值的配置，配置文件中未出现的字段保持默认
func Default() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName: "community_server",
			Host:    "0.0.0.0",
			Port:    8000,
			Mode:    "dev",
			Locale:  "en",
		},
		MysqlConfig: MysqlConfig{Host: "127.0.0.1", Port: 3306, User: "root", DatabaseName: "community"},
		RedisConfig: RedisConfig{Host: "127.0.0.1", Port: 6379},
		LogConfig:   LogConfig{LogPath: "./logs", Level: "info"},
		KafkaConfig: KafkaConfig{
			MessageMode:   "log",
			HostPort:      "127.0.0.1:9092",
			ActivityTopic: "community.activity",
			Partition:     1,
			Timeout:       time.Second,
		},
		JWTConfig:       JWTConfig{AccessTokenExpiry: 60, RefreshTokenExpiry: 168},
		SnowflakeConfig: SnowflakeConfig{MachineID: 1},
		RateLimitConfig: RateLimitConfig{RequestsPerSecond: 5, Burst: 30},
	}
}

// LoadConfig 从多个候选路径加载配置文件到 cfg
// 找到第一个可用的配置文件即停止
func LoadConfig(cfg *Config) error {
	for _, path := range searchPaths {
		if _, err := toml.DecodeFile(path, cfg); err == nil {
			return nil
		}
	}
	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// applyEnvOverrides 使用环境变量覆盖敏感配置
// 支持的变量：COMMUNITY_MYSQL_PASSWORD、COMMUNITY_REDIS_PASSWORD、COMMUNITY_JWT_SECRET、
// COMMUNITY_KAFKA_HOSTPORT、COMMUNITY_PORT
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("COMMUNITY_MYSQL_PASSWORD"); v != "" {
		cfg.MysqlConfig.Password = v
	}
	if v := os.Getenv("COMMUNITY_REDIS_PASSWORD"); v != "" {
		cfg.RedisConfig.Password = v
	}
	if v := os.Getenv("COMMUNITY_JWT_SECRET"); v != "" {
		cfg.JWTConfig.Secret = v
	}
	if v := os.Getenv("COMMUNITY_KAFKA_HOSTPORT"); v != "" {
		cfg.KafkaConfig.HostPort = v
	}
	if v := os.Getenv("COMMUNITY_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.MainConfig.Port = port
		}
	}
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时加载 .env 与配置文件，缺失时使用默认值
func GetConfig() *Config {
	if config == nil {
		_ = godotenv.Load() // .env 不存在时忽略
		cfg := Default()
		_ = LoadConfig(cfg)
		applyEnvOverrides(cfg)
		config = cfg
	}
	return config
}
