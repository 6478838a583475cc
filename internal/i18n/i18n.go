package i18n

import (
	"fmt"
)

var currentLanguage = "zh" // 默认中文

// Message 多语言消息定义
var messages = map[string]map[string]string{
	"en": {
		// Common
		"error":   "Error",
		"warning": "Warning",

		// File creation
		"file.created":        "Created %s",
		"file.created_from":   "Created %s (template: %s)",
		"file.exists":         "The file '%s' already exists",
		"folder.created":      "Created folder %s",
		"file.dry_run":        "Would create %s",
		"file.none_requested": "No file name given",
		"backup.created":      "Backed up %s to %s",
		"backup.list":         "Backups of %s (%d)",
		"backup.none":         "No backups for %s",

		// Resolution
		"resolve.template":  "Template",
		"resolve.none":      "(none)",
		"resolve.write":     "Write path",
		"resolve.items":     "Item name",
		"resolve.local":     "Local override",
		"resolve.extension": "Extension",
		"resolve.content":   "Content",

		// Catalog
		"catalog.source": "Templates from %s (%d)",
		"catalog.empty":  "No templates found",

		// TUI
		"tui.title":       "Add new file",
		"tui.folder":      "Folder: %s",
		"tui.placeholder": "File name, e.g. Models/User.cs, IRepository.cs",
		"tui.help":        "Enter: create • Esc: cancel • separate names with commas",
		"tui.folder_hint": "Creates a folder",
		"tui.cancelled":   "Cancelled.",
	},
	"zh": {
		"error":   "错误",
		"warning": "警告",

		"file.created":        "已创建 %s",
		"file.created_from":   "已创建 %s（模板: %s）",
		"file.exists":         "文件 '%s' 已存在",
		"folder.created":      "已创建目录 %s",
		"file.dry_run":        "将创建 %s",
		"file.none_requested": "未指定文件名",
		"backup.created":      "已备份 %s 到 %s",
		"backup.list":         "%s 的备份（%d 个）",
		"backup.none":         "%s 没有备份",

		"resolve.template":  "模板",
		"resolve.none":      "（无）",
		"resolve.write":     "写入路径",
		"resolve.items":     "名称",
		"resolve.local":     "本地模板",
		"resolve.extension": "扩展名",
		"resolve.content":   "内容",

		"catalog.source": "模板来源 %s（%d 个）",
		"catalog.empty":  "未找到模板",

		"tui.title":       "添加新文件",
		"tui.folder":      "目录: %s",
		"tui.placeholder": "文件名，例如 Models/User.cs, IRepository.cs",
		"tui.help":        "Enter: 创建 • Esc: 取消 • 多个名称用逗号分隔",
		"tui.folder_hint": "将创建目录",
		"tui.cancelled":   "已取消。",
	},
}

// SetLanguage 设置当前语言
func SetLanguage(lang string) {
	if lang == "en" || lang == "zh" {
		currentLanguage = lang
	}
}

// GetLanguage 获取当前语言
func GetLanguage() string {
	return currentLanguage
}

// T 翻译消息 (Translation)
func T(key string, args ...interface{}) string {
	langMessages, ok := messages[currentLanguage]
	if !ok {
		langMessages = messages["zh"] // 降级到中文
	}

	msg, ok := langMessages[key]
	if !ok {
		return key // 如果找不到翻译，返回 key 本身
	}

	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}

	return msg
}
