package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultPath 默认配置文件路径
const DefaultPath = "config/config.yaml"

// LogFile 日志文件路径 (相对于工作目录)，固定不可配置
const LogFile = "logs/system.log"

// Config 项目配置结构体
type Config struct {
	Log LogConfig `yaml:"log"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level   string `yaml:"level"`   // 最严格只到 info，保证每次运行都有记录
	Console bool   `yaml:"console"` // 同时输出到 stderr
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: logrus.InfoLevel.String(),
		},
	}
}

// LoadConfig 从指定路径加载配置
// 文件不存在时返回默认配置，不视为错误
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Log.Level = clampLevel(fileCfg.Log.Level)
	cfg.Log.Console = fileCfg.Log.Console

	return cfg, nil
}

// clampLevel 比 info 更严格或无法解析的级别一律回落到 info
func clampLevel(s string) string {
	level, err := logrus.ParseLevel(s)
	if err != nil || level < logrus.InfoLevel {
		return logrus.InfoLevel.String()
	}
	return level.String()
}
