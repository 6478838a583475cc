package backup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YangQing-Lin/add-any-file/internal/template"
)

const (
	// MaxBackups 每个文件保留的备份数量
	MaxBackups = 5
	// ConfigDirName 项目内的工具目录
	ConfigDirName = ".addfile"
	// BackupDirName 备份目录名
	BackupDirName = "backups"
	// BackupSuffix 备份文件后缀
	BackupSuffix = ".bak"

	timestampLayout = "20060102_150405.000000"
	idLength        = 8
)

// now 当前时间（测试中可替换）
var now = time.Now

// BackupInfo 一个备份文件
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Dir 项目根目录下的备份目录
func Dir(root string) string {
	return filepath.Join(root, ConfigDirName, BackupDirName)
}

// CreateBackup 在覆盖 path 之前把它复制到项目备份目录，返回备份文件路径。
// path 不存在时返回空字符串。
func CreateBackup(root, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if root == "" {
		root = filepath.Dir(path)
	}
	backupDir := Dir(root)
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	prefix := backupPrefix(root, path)
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:idLength]
	backupPath := filepath.Join(backupDir, prefix+"_"+now().UTC().Format(timestampLayout)+"_"+id+BackupSuffix)
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}

	cleanupBackupsByPrefix(backupDir, prefix, MaxBackups)
	return backupPath, nil
}

// Apply 创建条目，覆盖已存在的文件前先备份。返回备份路径（没有备份时为空）。
func Apply(root string, item template.Item, overwrite bool) (string, error) {
	var backupPath string
	if overwrite && !item.Folder {
		p, err := CreateBackup(root, item.Target())
		if err != nil {
			return "", err
		}
		backupPath = p
	}
	if err := item.Apply(overwrite); err != nil {
		return backupPath, err
	}
	return backupPath, nil
}

// ListBackups 返回 path 的全部备份（最新的在前）
func ListBackups(root, path string) ([]BackupInfo, error) {
	backups, err := listByPrefix(Dir(root), backupPrefix(root, path))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// backupPrefix 以项目内相对路径命名备份，路径分隔符替换为下划线
func backupPrefix(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(path)
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "_")
}

func listByPrefix(backupDir, prefix string) ([]BackupInfo, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []BackupInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, ok := parseBackupName(entry.Name(), prefix)
		if !ok {
			continue
		}

		fullPath := filepath.Join(backupDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      fullPath,
			Timestamp: ts,
			Size:      info.Size(),
		})
	}
	return backups, nil
}

// parseBackupName 解析 "<prefix>_<timestamp>_<id>.bak"
func parseBackupName(name, prefix string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(name, prefix+"_")
	if !ok {
		return time.Time{}, false
	}
	rest, ok = strings.CutSuffix(rest, BackupSuffix)
	if !ok || len(rest) != len(timestampLayout)+1+idLength || rest[len(timestampLayout)] != '_' {
		return time.Time{}, false
	}
	ts, err := time.Parse(timestampLayout, rest[:len(timestampLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// cleanupBackupsByPrefix 只保留最近的 retain 个备份
func cleanupBackupsByPrefix(backupDir, prefix string, retain int) {
	if retain == 0 {
		return
	}

	backups, err := listByPrefix(backupDir, prefix)
	if err != nil || len(backups) <= retain {
		return
	}

	// 按时间排序（最旧的在前）
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.Before(backups[j].Timestamp)
	})

	for i := 0; i < len(backups)-retain; i++ {
		os.Remove(backups[i].Path)
	}
}
