package portable

import (
	"os"
	"path/filepath"
)

// TemplatesDirName 程序目录下的模板目录名
const TemplatesDirName = "Templates"

var portableExecutableFunc = os.Executable

// ExecutableDir 返回程序所在目录
func ExecutableDir() (string, error) {
	execPath, err := portableExecutableFunc()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}

// TemplatesDir 返回程序所在目录下的 Templates 目录（不保证存在）
func TemplatesDir() (string, error) {
	execDir, err := ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(execDir, TemplatesDirName), nil
}

// IsPortableMode 检测是否为便携版模式
// 便携版模式：在程序所在目录下存在 portable.ini 文件
func IsPortableMode() bool {
	execDir, err := ExecutableDir()
	if err != nil {
		return false
	}

	info, err := os.Stat(filepath.Join(execDir, "portable.ini"))
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// GetPortableConfigDir 获取便携版配置目录
// 便携版模式下，配置目录为程序所在目录下的 .addfile 子目录
func GetPortableConfigDir() (string, error) {
	execDir, err := ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(execDir, ".addfile"), nil
}
