package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// searchLocalTemplate 从 folder 开始向上查找 *.template，最多 depth 层（含 folder 本身）。
// 到达项目根目录或文件系统根目录后停止，不会越过项目根目录。
func searchLocalTemplate(folder, projectRoot string, depth int) (string, error) {
	current, err := filepath.Abs(folder)
	if err != nil {
		return "", fmt.Errorf("failed to resolve folder %s: %w", folder, err)
	}
	root := ""
	if projectRoot != "" {
		if root, err = filepath.Abs(projectRoot); err != nil {
			return "", fmt.Errorf("failed to resolve project root %s: %w", projectRoot, err)
		}
	}

	for i := 0; i < depth; i++ {
		tmpl, err := firstLocalTemplate(current)
		if err != nil {
			return "", err
		}
		if tmpl != "" {
			return tmpl, nil
		}

		parent := filepath.Dir(current)
		if current == root || parent == current {
			return "", nil
		}
		current = parent
	}
	return "", nil
}

// firstLocalTemplate 返回目录下（不递归）按名称排序的第一个 *.template 文件。
// 目录不存在视为没有模板，其他读取错误原样返回。
func firstLocalTemplate(dir string) (string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), LocalTemplatePattern,
		doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to search local templates in %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return "", nil
	}
	sort.Strings(matches)
	return filepath.Join(dir, matches[0]), nil
}
