package template

import (
	"regexp"
	"strings"
	"unicode"
)

var lineBreakPattern = regexp.MustCompile(`\r\n|\n\r|\n|\r`)

// CleanNamespace 将相对路径转换为命名空间片段：路径分隔符转为点，去掉非标识符字符
func CleanNamespace(relative string) string {
	parts := strings.FieldsFunc(relative, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		var b strings.Builder
		for _, r := range part {
			if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			segments = append(segments, b.String())
		}
	}
	return strings.Join(segments, ".")
}

// BuildNamespace 根命名空间（为空时 MyNamespace）加上相对目录片段
func BuildNamespace(rootNamespace, relative string) string {
	ns := rootNamespace
	if ns == "" {
		ns = DefaultNamespace
	}
	if relative == "" {
		return ns
	}
	if suffix := CleanNamespace(relative); suffix != "" {
		ns += "." + suffix
	}
	return ns
}

// NormalizeLineEndings 将所有换行（\n、\r、\r\n、\n\r）统一为 \r\n
func NormalizeLineEndings(content string) string {
	if content == "" {
		return content
	}
	return lineBreakPattern.ReplaceAllString(content, "\r\n")
}
