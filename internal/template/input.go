package template

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ParseInput 解析用户输入的文件名列表。
// 支持逗号分隔（"a.cs, b.cs"）与引号包裹含空格的名称（"\"my file.txt\""）。
// 反斜杠按路径分隔符处理，统一转换为 "/"。
func ParseInput(input string) ([]string, error) {
	words, err := shellwords.Parse(strings.ReplaceAll(input, `\`, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid file name input: %w", err)
	}

	return SplitNames(words), nil
}

// SplitNames 将参数按逗号拆分为名称列表，去掉空白项，反斜杠转换为 "/"
func SplitNames(args []string) []string {
	names := []string{}
	for _, arg := range args {
		for _, part := range strings.Split(strings.ReplaceAll(arg, `\`, "/"), ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				names = append(names, part)
			}
		}
	}
	return names
}

// IsFolderName 以路径分隔符结尾的名称表示要创建的目录
func IsFolderName(name string) bool {
	return strings.HasSuffix(name, "/") || strings.HasSuffix(name, "\\")
}
