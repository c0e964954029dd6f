package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

type ScanConfig struct {
	IgnorePatterns []string `toml:"ignore_patterns"` // gitignore 语法
	MaxFileSizeKB  int      `toml:"max_file_size_kb"`
}

type ProcessConfig struct {
	Workers        int `toml:"workers"`
	ParseCacheSize int `toml:"parse_cache_size"` // 两阶段之间缓存的语法树数量
}

type TemplateConfig struct {
	SkipImplicitImports bool `toml:"skip_implicit_imports"` // 输出清单时去掉 java.lang 顶层类型
}

type LogConfig struct {
	Dir   string `toml:"dir"`
	Level string `toml:"level"`
}

type Config struct {
	Scan     ScanConfig     `toml:"scan"`
	Process  ProcessConfig  `toml:"process"`
	Template TemplateConfig `toml:"template"`
	Log      LogConfig      `toml:"log"`
}

var DefaultIgnorePatterns = []string{
	".*",
	"target/",
	"build/",
	"out/",
	"node_modules/",
}

func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			IgnorePatterns: append([]string(nil), DefaultIgnorePatterns...),
			MaxFileSizeKB:  1024,
		},
		Process: ProcessConfig{
			Workers:        runtime.NumCPU(),
			ParseCacheSize: 256,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load 读取 TOML 配置文件, 文件中未出现的字段保留默认值; path 为空时直接返回默认配置
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Process.Workers <= 0 {
		return fmt.Errorf("process.workers must be positive, got %d", c.Process.Workers)
	}
	if c.Process.ParseCacheSize <= 0 {
		return fmt.Errorf("process.parse_cache_size must be positive, got %d", c.Process.ParseCacheSize)
	}
	if c.Scan.MaxFileSizeKB < 0 {
		return fmt.Errorf("scan.max_file_size_kb must not be negative, got %d", c.Scan.MaxFileSizeKB)
	}
	return nil
}
