package template

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// NoDifferences 内容一致时 GenerateDiff 的返回值
const NoDifferences = "No differences found."

// GenerateDiff 生成两个文本之间的逐行 diff（"-" 删除，"+" 新增，" " 未变）
func GenerateDiff(oldText, newText, oldLabel, newLabel string) string {
	if oldText == newText {
		return NoDifferences
	}

	dmp := diffmatchpatch.New()
	oldRunes, newRunes, lines := dmp.DiffLinesToRunes(oldText, newText)
	diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var result strings.Builder
	result.WriteString(fmt.Sprintf("--- %s\n", oldLabel))
	result.WriteString(fmt.Sprintf("+++ %s\n", newLabel))

	for _, d := range diffs {
		marker := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			marker = "-"
		case diffmatchpatch.DiffInsert:
			marker = "+"
		}
		text := strings.ReplaceAll(d.Text, "\r\n", "\n")
		for _, line := range strings.SplitAfter(text, "\n") {
			if line == "" {
				continue
			}
			result.WriteString(marker + strings.TrimRight(line, "\r\n") + "\n")
		}
	}
	return result.String()
}

// DiffAgainst 比较已有文件内容与解析结果
func DiffAgainst(existing string, result *Result) string {
	newLabel := "(no template)"
	if result.HasTemplate() {
		newLabel = result.TemplatePath
	}
	return GenerateDiff(existing, result.Content, result.WritePath, newLabel)
}

// FormatDiffForCLI 为 CLI 输出着色
func FormatDiffForCLI(diff string) string {
	bold := color.New(color.Bold).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	var result strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			result.WriteString(bold(line))
		case strings.HasPrefix(line, "-"):
			result.WriteString(red(line))
		case strings.HasPrefix(line, "+"):
			result.WriteString(green(line))
		case strings.HasPrefix(line, "@@"):
			result.WriteString(cyan(line))
		default:
			result.WriteString(line)
		}
		result.WriteString("\n")
	}
	return result.String()
}
