package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/YangQing-Lin/add-any-file/internal/i18n"
	"github.com/YangQing-Lin/add-any-file/internal/template"
)

const previewLines = 8

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(i18n.T("tui.title")) + "\n")
	s.WriteString(infoStyle.Render("  "+i18n.T("tui.folder", m.dir)) + "\n\n")
	s.WriteString("  " + m.input.View() + "\n\n")

	for _, item := range m.items {
		s.WriteString(m.viewItem(item))
	}

	if m.err != nil {
		s.WriteString(errorStyle.Render(i18n.T("error")+": "+m.err.Error()) + "\n")
	}

	s.WriteString("\n" + helpStyle.Render(i18n.T("tui.help")))
	return s.String()
}

func (m Model) viewItem(item template.Item) string {
	target := m.relative(item.Target())
	if item.Folder {
		return fmt.Sprintf("  %s  %s\n", targetStyle.Render(target), infoStyle.Render(i18n.T("tui.folder_hint")))
	}

	res := item.Result
	var s strings.Builder
	line := "  " + targetStyle.Render(target)
	if res.IsLocal {
		line += " " + localStyle.Render("["+i18n.T("resolve.local")+"]")
	}
	tmpl := i18n.T("resolve.none")
	if res.HasTemplate() {
		tmpl = res.TemplatePath
	}
	line += "  " + infoStyle.Render(i18n.T("resolve.template")+": "+tmpl)
	s.WriteString(line + "\n")

	if res.Content != "" {
		s.WriteString(panelStyle.Render(excerpt(res.Content, previewLines)) + "\n")
	}
	return s.String()
}

// relative 相对当前目录展示路径
func (m Model) relative(path string) string {
	if rel, err := filepath.Rel(m.dir, path); err == nil {
		return rel
	}
	return path
}

// excerpt 取内容前 n 行
func excerpt(content string, n int) string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if len(lines) > n {
		lines = append(lines[:n], "…")
	}
	return strings.Join(lines, "\n")
}
