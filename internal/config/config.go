package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/YangQing-Lin/add-any-file/internal/settings"
	"github.com/YangQing-Lin/add-any-file/internal/template"
)

// EnvPrefix 环境变量前缀（ADDFILE_TEMPLATES_DIR 等）
const EnvPrefix = "ADDFILE"

// 项目配置文件名，按优先级排列
var projectFiles = []string{".addfile.toml", ".addfile.yaml", ".addfile.yml"}

// Config 解析所需的全部配置
type Config struct {
	Namespace        string `toml:"namespace" yaml:"namespace" envconfig:"NAMESPACE"`                         // 覆盖项目根命名空间
	TemplatesDir     string `toml:"templates_dir" yaml:"templates_dir" envconfig:"TEMPLATES_DIR"`             // 模板目录
	DefaultExtension string `toml:"default_extension" yaml:"default_extension" envconfig:"DEFAULT_EXTENSION"` // 无扩展名时的扩展名
	SearchDepth      int    `toml:"search_depth" yaml:"search_depth" envconfig:"SEARCH_DEPTH"`                // 本地模板查找层数
	Language         string `toml:"language" yaml:"language" envconfig:"LANGUAGE"`                            // en / zh
	LogLevel         string `toml:"log_level" yaml:"log_level" envconfig:"LOG_LEVEL"`                         // debug / info / warn / error
	LogFormat        string `toml:"log_format" yaml:"log_format" envconfig:"LOG_FORMAT"`                      // text / json

	File string `toml:"-" yaml:"-" ignored:"true"` // 实际加载的项目配置文件
}

// Default 默认配置
func Default() *Config {
	return &Config{
		DefaultExtension: template.DefaultExtension,
		SearchDepth:      template.DefaultSearchDepth,
		Language:         "zh",
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Load 按 默认值 < 用户设置 < 项目配置文件 < 环境变量 的顺序合并配置。
// 配置文件只读取，不会写回。
func Load(root string, s *settings.AppSettings) (*Config, error) {
	cfg := Default()

	if s != nil {
		cfg.applySettings(s)
	}

	if root != "" {
		if err := cfg.loadProjectFile(root); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("解析环境变量失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applySettings(s *settings.AppSettings) {
	if s.Language != "" {
		c.Language = s.Language
	}
	if s.TemplatesDir != "" {
		c.TemplatesDir = s.TemplatesDir
	}
	if s.DefaultExtension != "" {
		c.DefaultExtension = s.DefaultExtension
	}
}

// loadProjectFile 读取项目根目录下第一个存在的配置文件
func (c *Config) loadProjectFile(root string) error {
	for _, name := range projectFiles {
		path := filepath.Join(root, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("读取配置文件失败: %w", err)
		}

		// 只覆盖文件中出现的字段
		file := &Config{}
		if strings.HasSuffix(name, ".toml") {
			err = toml.Unmarshal(data, file)
		} else {
			err = yaml.Unmarshal(data, file)
		}
		if err != nil {
			return fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
		}

		c.merge(file)
		if file.TemplatesDir != "" && !filepath.IsAbs(file.TemplatesDir) {
			c.TemplatesDir = filepath.Join(root, file.TemplatesDir)
		}
		c.File = path
		return nil
	}
	return nil
}

func (c *Config) merge(o *Config) {
	if o.Namespace != "" {
		c.Namespace = o.Namespace
	}
	if o.TemplatesDir != "" {
		c.TemplatesDir = o.TemplatesDir
	}
	if o.DefaultExtension != "" {
		c.DefaultExtension = o.DefaultExtension
	}
	if o.SearchDepth != 0 {
		c.SearchDepth = o.SearchDepth
	}
	if o.Language != "" {
		c.Language = o.Language
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		c.LogFormat = o.LogFormat
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.SearchDepth < 1 {
		return fmt.Errorf("search_depth 必须大于 0，当前为 %d", c.SearchDepth)
	}
	if !strings.HasPrefix(c.DefaultExtension, ".") || len(c.DefaultExtension) < 2 {
		return fmt.Errorf("default_extension 必须以 \".\" 开头: %q", c.DefaultExtension)
	}
	if c.Language != "en" && c.Language != "zh" {
		return fmt.Errorf("不支持的语言: %s (支持: en, zh)", c.Language)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("不支持的日志格式: %s (支持: text, json)", c.LogFormat)
	}
	return nil
}

// ResolverOptions 转换为模板解析器选项
func (c *Config) ResolverOptions() template.Options {
	return template.Options{
		DefaultExtension: c.DefaultExtension,
		SearchDepth:      c.SearchDepth,
	}
}
