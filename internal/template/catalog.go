package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

//go:embed all:builtin_templates
var builtinTemplatesFS embed.FS

const (
	// TemplateSuffix 模板目录中模板文件的后缀
	TemplateSuffix = ".txt"
	// BuiltinSource 内置模板集的来源名称
	BuiltinSource = "builtin"

	builtinDir = "builtin_templates"
)

// Catalog 模板目录（构建后只读，可并发读取）
type Catalog struct {
	fsys    fs.FS
	source  string
	entries []Entry
}

// NewCatalog 递归扫描 fsys 中的 *.txt 模板文件
func NewCatalog(fsys fs.FS, source string) (*Catalog, error) {
	matches, err := doublestar.Glob(fsys, "**/*"+TemplateSuffix, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to scan templates in %s: %w", source, err)
	}

	entries := make([]Entry, 0, len(matches))
	for _, match := range matches {
		entries = append(entries, Entry{
			Name: path.Base(match),
			Path: match,
		})
	}

	// 浅层优先，同层按路径排序，保证查找结果稳定
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := strings.Count(entries[i].Path, "/"), strings.Count(entries[j].Path, "/")
		if di != dj {
			return di < dj
		}
		return entries[i].Path < entries[j].Path
	})

	return &Catalog{
		fsys:    fsys,
		source:  source,
		entries: entries,
	}, nil
}

// LoadCatalog 从磁盘目录加载模板目录，dir 为空时使用内置模板。
// 目录不存在时返回错误（包装 fs.ErrNotExist）。
func LoadCatalog(dir string) (*Catalog, error) {
	if dir == "" {
		return BuiltinCatalog()
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates path is not a directory: %s", dir)
	}

	return NewCatalog(os.DirFS(dir), dir)
}

// BuiltinCatalog 返回随程序嵌入的模板目录
func BuiltinCatalog() (*Catalog, error) {
	sub, err := fs.Sub(builtinTemplatesFS, builtinDir)
	if err != nil {
		return nil, err
	}
	return NewCatalog(sub, BuiltinSource)
}

// Source 模板目录来源（目录路径或 "builtin"）
func (c *Catalog) Source() string {
	return c.source
}

// IsBuiltin 是否为内置模板集
func (c *Catalog) IsBuiltin() bool {
	return c.source == BuiltinSource
}

// Entries 返回所有模板（副本）
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len 模板数量
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup 按文件名查找模板（忽略大小写）
func (c *Catalog) Lookup(fileName string) (Entry, bool) {
	for _, entry := range c.entries {
		if strings.EqualFold(entry.Name, fileName) {
			return entry, true
		}
	}
	return Entry{}, false
}

// LookupKey 按模板键查找（键 + ".txt"）
func (c *Catalog) LookupKey(key string) (Entry, bool) {
	return c.Lookup(key + TemplateSuffix)
}

// Read 读取模板原始内容
func (c *Catalog) Read(entry Entry) (string, error) {
	data, err := fs.ReadFile(c.fsys, entry.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", entry.Path, err)
	}
	return string(data), nil
}

// DisplayPath 模板的展示路径（磁盘目录下为完整路径）
func (c *Catalog) DisplayPath(entry Entry) string {
	if c.IsBuiltin() {
		return BuiltinSource + ":" + entry.Path
	}
	return filepath.Join(c.source, filepath.FromSlash(entry.Path))
}
