package template

// Request 一次模板解析请求
type Request struct {
	FilePath      string // 要创建的文件完整路径
	ProjectRoot   string // 项目根目录
	RootNamespace string // 项目根命名空间（可为空）
}

// Result 模板解析结果
type Result struct {
	TemplatePath        string `json:"template_path,omitempty" yaml:"template_path,omitempty"` // 命中的模板（为空表示无模板）
	WritePath           string `json:"write_path" yaml:"write_path"`                           // 最终写入路径
	ShortItemName       string `json:"short_item_name" yaml:"short_item_name"`                 // 替换 {itemname} 的名称
	LongItemName        string `json:"long_item_name" yaml:"long_item_name"`                   // 模板前缀展开后的名称
	HasReplacementTitle bool   `json:"has_replacement_title" yaml:"has_replacement_title"`     // 模板文件名是否带 {itemname}
	IsLocal             bool   `json:"is_local" yaml:"is_local"`                               // 是否命中本地 *.template
	Extension           string `json:"extension,omitempty" yaml:"extension,omitempty"`         // 文件扩展名（含点）
	Content             string `json:"content" yaml:"content"`                                 // 替换并规范换行后的内容
	CursorPosition      int    `json:"cursor_position" yaml:"cursor_position"`                 // 光标位置提示（暂未使用）
}

// HasTemplate 是否命中了模板
func (r *Result) HasTemplate() bool {
	return r.TemplatePath != ""
}

// Entry 模板目录中的一个模板文件
type Entry struct {
	Name string `json:"name"` // 文件名（如 ".cs.txt"）
	Path string `json:"path"` // 目录内相对路径（斜杠分隔）
}

// Key 模板键（去掉 .txt 后缀）
func (e Entry) Key() string {
	return e.Name[:len(e.Name)-len(TemplateSuffix)]
}
