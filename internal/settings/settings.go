package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/YangQing-Lin/add-any-file/internal/portable"
	"github.com/YangQing-Lin/add-any-file/internal/utils"
)

// AppSettings 用户级设置（只读，不会被程序写回）
type AppSettings struct {
	Language         string `json:"language"`         // 语言: "en" 或 "zh"
	TemplatesDir     string `json:"templatesDir"`     // 自定义模板目录
	DefaultExtension string `json:"defaultExtension"` // 无扩展名时使用的扩展名
}

// Manager 设置管理器
type Manager struct {
	settings     *AppSettings
	settingsPath string
}

// NewManager 创建设置管理器
func NewManager() (*Manager, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, fmt.Errorf("获取设置文件路径失败: %w", err)
	}
	return NewManagerWithPath(settingsPath)
}

// NewManagerWithPath 使用指定路径创建设置管理器
func NewManagerWithPath(settingsPath string) (*Manager, error) {
	manager := &Manager{
		settingsPath: settingsPath,
	}

	if err := manager.Load(); err != nil {
		return nil, err
	}

	return manager, nil
}

// GetSettingsPath 获取设置文件路径（便携版模式下位于程序目录）
func GetSettingsPath() (string, error) {
	if portable.IsPortableMode() {
		dir, err := portable.GetPortableConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "settings.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("获取用户主目录失败: %w", err)
	}

	return filepath.Join(homeDir, ".addfile", "settings.json"), nil
}

// Defaults 默认设置
func Defaults() *AppSettings {
	return &AppSettings{
		Language: "zh", // 默认中文
	}
}

// Load 加载设置文件，文件不存在时使用默认设置
func (m *Manager) Load() error {
	if !utils.FileExists(m.settingsPath) {
		m.settings = Defaults()
		return nil
	}

	m.settings = Defaults()
	if err := utils.ReadJSONFile(m.settingsPath, m.settings); err != nil {
		return fmt.Errorf("加载设置文件失败: %w", err)
	}

	if m.settings.Language != "en" && m.settings.Language != "zh" {
		return fmt.Errorf("不支持的语言: %s (支持: en, zh)", m.settings.Language)
	}

	return nil
}

// Path 设置文件路径
func (m *Manager) Path() string {
	return m.settingsPath
}

// Get 获取所有设置
func (m *Manager) Get() *AppSettings {
	return m.settings
}
