package template

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/YangQing-Lin/add-any-file/internal/logger"
)

const (
	// DummyName 宿主命令使用的占位文件名，不做任何模板解析
	DummyName = "__dummy__"
	// DefaultExtension 无扩展名时使用的扩展名
	DefaultExtension = ".cs"
	// DefaultNamespace 项目未提供根命名空间时使用
	DefaultNamespace = "MyNamespace"
	// DefaultSearchDepth 本地模板向上查找的层数（含目标目录）
	DefaultSearchDepth = 3
	// LocalTemplatePattern 本地覆盖模板的文件模式
	LocalTemplatePattern = "*.template"

	namespaceToken = "{namespace}"
	itemNameToken  = "{itemname}"
)

// Options 解析器选项
type Options struct {
	DefaultExtension string // 为空时使用 ".cs"
	SearchDepth      int    // <= 0 时使用 3
}

// Resolver 模板解析器，只持有只读的模板目录，可并发使用
type Resolver struct {
	catalog          *Catalog
	defaultExtension string
	searchDepth      int
}

// NewResolver 创建模板解析器
func NewResolver(catalog *Catalog, opts Options) *Resolver {
	ext := opts.DefaultExtension
	if ext == "" {
		ext = DefaultExtension
	}
	depth := opts.SearchDepth
	if depth <= 0 {
		depth = DefaultSearchDepth
	}
	return &Resolver{
		catalog:          catalog,
		defaultExtension: ext,
		searchDepth:      depth,
	}
}

// Catalog 返回解析器使用的模板目录
func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// resolved 命中的模板：本地文件或目录条目
type resolved struct {
	path  string // 本地模板的磁盘路径或目录条目的展示路径
	entry *Entry // 目录条目（本地模板时为 nil）
}

// Resolve 为目标文件解析模板并计算替换后的内容。
// 没有匹配的模板不是错误，返回的 Result.Content 为空，WritePath 为原路径。
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	file := req.FilePath
	folder := filepath.Dir(file)
	name := filepath.Base(file)
	extension := strings.ToLower(filepath.Ext(file))
	safeName := name
	if !strings.HasPrefix(name, ".") {
		safeName = strings.TrimSuffix(name, filepath.Ext(name))
	}
	relative := relativeFolder(req.ProjectRoot, folder)

	result := &Result{}
	var tmpl *resolved

	if name == DummyName {
		log.Debug("dummy name, skipping template lookup", "file", file)
	} else {
		local, err := searchLocalTemplate(folder, req.ProjectRoot, r.searchDepth)
		if err != nil {
			return nil, err
		}
		if local != "" {
			result.IsLocal = true
			tmpl = &resolved{path: local}
			log.Debug("using local template", "template", local)
		} else {
			tmpl = r.lookupCatalog(name, safeName, extension)
			if tmpl != nil {
				log.Debug("using catalog template", "template", tmpl.path)
			} else {
				log.Debug("no template matched", "file", name)
			}
		}

		result.Extension = extension
		if result.Extension == "" {
			result.Extension = r.defaultExtension
		}
	}

	templatePath := ""
	if tmpl != nil {
		templatePath = tmpl.path
	}
	applyItemName(safeName, templatePath, result)

	if result.IsLocal {
		result.WritePath = filepath.Join(folder, result.LongItemName+result.Extension)
	} else {
		result.WritePath = file
	}

	if tmpl == nil {
		return result, nil
	}

	raw, err := r.read(tmpl)
	if err != nil {
		return nil, err
	}
	ns := BuildNamespace(req.RootNamespace, relative)
	content := ReplaceTokens(raw, ns, result.ShortItemName)

	result.TemplatePath = templatePath
	result.Content = NormalizeLineEndings(content)
	return result, nil
}

// lookupCatalog 先按完整文件名匹配，再按扩展名匹配
func (r *Resolver) lookupCatalog(name, safeName, extension string) *resolved {
	if r.catalog == nil {
		return nil
	}

	if entry, ok := r.catalog.LookupKey(name); ok {
		return &resolved{path: r.catalog.DisplayPath(entry), entry: &entry}
	}

	entry, ok := r.catalog.LookupKey(extension)
	if !ok {
		return nil
	}

	// 接口命名（IFoo）优先使用 <ext>-interface 模板
	if key := adjustForSpecific(safeName, extension); key != extension {
		if specific, ok := r.catalog.LookupKey(key); ok {
			entry = specific
		}
	}
	return &resolved{path: r.catalog.DisplayPath(entry), entry: &entry}
}

func (r *Resolver) read(tmpl *resolved) (string, error) {
	if tmpl.entry != nil {
		return r.catalog.Read(*tmpl.entry)
	}
	data, err := os.ReadFile(tmpl.path)
	if err != nil {
		return "", fmt.Errorf("failed to read local template %s: %w", tmpl.path, err)
	}
	return string(data), nil
}

// ReplaceTokens 替换 {namespace} 与 {itemname}
func ReplaceTokens(content, namespace, itemName string) string {
	content = strings.ReplaceAll(content, namespaceToken, namespace)
	return strings.ReplaceAll(content, itemNameToken, itemName)
}

// relativeFolder 计算目录相对项目根目录的路径，根目录本身返回空串
func relativeFolder(root, folder string) string {
	if root == "" {
		return ""
	}
	rel, err := filepath.Rel(root, folder)
	if err != nil || rel == "." {
		return ""
	}
	return rel
}
