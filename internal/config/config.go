// Package config 负责加载和管理应用程序的配置。
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件加载的所有设置。
var Conf Config

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
// 所有键都可以通过环境变量覆盖，例如 SERVER_PORT、DATABASE_MYSQL_DSN。
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	GCP      GCPConfig      `mapstructure:"gcp"`
	Storage  StorageConfig  `mapstructure:"storage"`
	TTS      TTSConfig      `mapstructure:"tts"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig 存储 HTTP 服务器相关的配置。
// Mode 为 release 时，错误响应中不包含内部错误详情。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig 存储所有数据库连接的配置。
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
}

// MySQLConfig 存储 MySQL 数据库及其连接池的配置。
type MySQLConfig struct {
	DSN                    string `mapstructure:"dsn"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes"`
}

// GCPConfig 存储 Google Cloud 项目与凭证的配置。
// CredentialsFile 为空时回退到 GOOGLE_APPLICATION_CREDENTIALS 环境变量。
type GCPConfig struct {
	ProjectID       string `mapstructure:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// StorageConfig 存储对象存储的配置。
// Backend 可选 "gcs" 或 "minio"，两种后端共用同一个 BucketName。
type StorageConfig struct {
	Backend       string      `mapstructure:"backend"`
	BucketName    string      `mapstructure:"bucket_name"`
	PublicBaseURL string      `mapstructure:"public_base_url"`
	MinIO         MinIOConfig `mapstructure:"minio"`
}

// MinIOConfig 存储 MinIO 对象存储的配置。
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// TTSConfig 存储语音合成的固定音色配置。
type TTSConfig struct {
	LanguageCode string  `mapstructure:"language_code"`
	VoiceName    string  `mapstructure:"voice_name"`
	SpeakingRate float64 `mapstructure:"speaking_rate"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// Init 初始化配置加载，从指定的路径读取 YAML 文件并解析到 Conf 变量中。
// 环境变量的优先级高于配置文件。
func Init(configPath string) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	setDefaults()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("读取配置文件失败: %w", err))
	}

	if err := viper.Unmarshal(&Conf); err != nil {
		panic(fmt.Errorf("无法将配置解析到结构体中: %w", err))
	}
}

// setDefaults 设置默认值，配置文件缺省部分键时服务仍可启动。
func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("database.mysql.max_open_conns", 10)
	viper.SetDefault("database.mysql.max_idle_conns", 5)
	viper.SetDefault("database.mysql.conn_max_lifetime_minutes", 60)
	viper.SetDefault("storage.backend", "gcs")
	viper.SetDefault("tts.language_code", "id-ID")
	viper.SetDefault("tts.voice_name", "id-ID-Standard-A")
	viper.SetDefault("tts.speaking_rate", 1.0)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}
