package template

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/YangQing-Lin/add-any-file/internal/utils"
)

// Item 一个待创建的文件或目录
type Item struct {
	Input  string  // 用户输入的名称
	Path   string  // 目录或请求的文件路径
	Folder bool    // 是否为目录
	Result *Result // 文件的解析结果（目录为 nil）
}

// Target 最终写入位置
func (it Item) Target() string {
	if it.Folder || it.Result == nil {
		return it.Path
	}
	return it.Result.WritePath
}

// Plan 解析 dir 下要创建的一组名称。base 提供项目根目录与根命名空间。
func (r *Resolver) Plan(ctx context.Context, base Request, dir string, names []string) ([]Item, error) {
	items := make([]Item, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))

		if IsFolderName(name) {
			items = append(items, Item{Input: name, Path: path, Folder: true})
			continue
		}

		req := base
		req.FilePath = path
		res, err := r.Resolve(ctx, req)
		if err != nil {
			return nil, err
		}
		items = append(items, Item{Input: name, Path: path, Result: res})
	}
	return items, nil
}

// Apply 创建目录或写入文件，已存在的文件在 overwrite 为 false 时返回 utils.ErrFileExists
func (it Item) Apply(overwrite bool) error {
	if it.Folder {
		if err := os.MkdirAll(it.Path, 0755); err != nil {
			return fmt.Errorf("failed to create folder %s: %w", it.Path, err)
		}
		return nil
	}
	return utils.CreateFile(it.Target(), []byte(it.Result.Content), overwrite)
}
