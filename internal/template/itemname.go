package template

import (
	"path/filepath"
	"regexp"
	"strings"
)

var interfaceNamePattern = regexp.MustCompile(`^I[A-Z]`)

// IsInterfaceName 名称是否符合接口命名约定（I 后跟大写字母）
func IsInterfaceName(name string) bool {
	return interfaceNamePattern.MatchString(name)
}

// adjustForSpecific 接口命名时返回 <ext>-interface 键
func adjustForSpecific(safeName, extension string) string {
	if IsInterfaceName(safeName) {
		return extension + "-interface"
	}
	return extension
}

// applyItemName 根据模板文件名中的 {itemname} 计算短名与长名。
// 模板文件名去掉扩展名和所有点之后，移除 {itemname} 得到前缀：
// 输入已包含前缀时短名去掉前缀，否则长名由前缀模板展开。
func applyItemName(inputName, templatePath string, result *Result) {
	result.ShortItemName = inputName
	result.LongItemName = inputName

	if templatePath == "" {
		return
	}

	base := filepath.Base(templatePath)
	rawName := strings.ReplaceAll(strings.TrimSuffix(base, filepath.Ext(base)), ".", "")
	if !strings.Contains(rawName, itemNameToken) {
		return
	}

	result.HasReplacementTitle = true
	prefix := strings.ReplaceAll(rawName, itemNameToken, "")

	if strings.Contains(inputName, prefix) {
		result.ShortItemName = strings.ReplaceAll(inputName, prefix, "")
		result.LongItemName = inputName
		return
	}
	result.LongItemName = strings.ReplaceAll(rawName, itemNameToken, inputName)
}
