package config

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// StorageConfig 存储配置
// DataDir 为空时使用可执行文件旁的 data 目录（便携模式可用
// GARAGE_DATA_DIR 环境变量覆盖）
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// PortableDataDirEnv 便携模式数据目录环境变量
const PortableDataDirEnv = "GARAGE_DATA_DIR"

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("警告: 无法读取指定配置文件 %s: %v", configPath, err)
		} else {
			log.Printf("已合并外部配置文件: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("$HOME/.garage")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("警告: 合并外部配置失败: %v", err)
			} else {
				log.Printf("已合并外部配置文件: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. 支持环境变量覆盖
	v.SetEnvPrefix("GARAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	return &cfg, nil
}

// ResolveDataDir 解析数据目录并保证其存在
// 便携模式: GARAGE_DATA_DIR 环境变量优先；其次配置文件；
// 都没有时使用可执行文件所在目录下的 data 目录。
// 多次调用幂等，始终返回同一路径。
func (c *Config) ResolveDataDir() (string, error) {
	dir := os.Getenv(PortableDataDirEnv)
	if dir == "" {
		dir = c.Storage.DataDir
	}
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("定位可执行文件失败: %w", err)
		}
		dir = filepath.Join(filepath.Dir(exe), "data")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("创建数据目录失败: %w", err)
	}
	return dir, nil
}

// DatabasePath 数据库文件路径
func (c *Config) DatabasePath() (string, error) {
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "garage.db"), nil
}

// PrintConfig 打印当前配置
func (c *Config) PrintConfig() {
	dir, _ := c.ResolveDataDir()
	log.Printf("当前配置:")
	log.Printf("  服务器: %s (模式: %s)", c.Server.Port, c.Server.Mode)
	log.Printf("  数据目录: %s", dir)
}
