package project

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// 项目根目录标记文件，按优先级排列
var rootMarkers = []string{".addfile.toml", ".addfile.yaml", ".addfile.yml", "go.mod", ".git"}

// 项目文件扩展名（可读取 RootNamespace）
var projectFileExts = []string{".csproj", ".vbproj"}

// Info 项目信息
type Info struct {
	Root          string // 项目根目录（绝对路径）
	RootNamespace string // 根命名空间（可能为空）
	ProjectFile   string // 项目文件路径（可能为空）
}

// Discover 从目录向上查找项目根目录并读取根命名空间
func Discover(dir string) (*Info, error) {
	root, err := FindRoot(dir)
	if err != nil {
		return nil, err
	}
	return Load(root)
}

// Load 读取指定项目根目录的信息（不向上查找）
func Load(root string) (*Info, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %s: %w", root, err)
	}

	info := &Info{Root: abs}
	info.ProjectFile = findProjectFile(abs)
	if info.ProjectFile != "" {
		ns, err := ReadRootNamespace(info.ProjectFile)
		if err != nil {
			return nil, err
		}
		info.RootNamespace = ns
	}
	return info, nil
}

// FindRoot 返回 dir 及其祖先中第一个包含项目标记的目录，找不到时返回 dir 本身
func FindRoot(dir string) (string, error) {
	start, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}

	current := start
	for {
		if isRoot(current) {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return start, nil
		}
		current = parent
	}
}

func isRoot(dir string) bool {
	for _, marker := range rootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return findProjectFile(dir) != ""
}

// findProjectFile 返回目录下按名称排序的第一个项目文件
func findProjectFile(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range projectFileExts {
			if ext == want {
				matches = append(matches, entry.Name())
			}
		}
	}
	if len(matches) == 0 {
		return ""
	}
	sort.Strings(matches)
	return filepath.Join(dir, matches[0])
}

type msbuildProject struct {
	PropertyGroups []struct {
		RootNamespace string `xml:"RootNamespace"`
	} `xml:"PropertyGroup"`
}

// ReadRootNamespace 读取项目文件中的 <RootNamespace>，缺失时使用项目文件名
func ReadRootNamespace(projectFile string) (string, error) {
	data, err := os.ReadFile(projectFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read project file: %w", err)
	}

	var proj msbuildProject
	if err := xml.Unmarshal(data, &proj); err != nil {
		return "", fmt.Errorf("failed to parse project file %s: %w", projectFile, err)
	}

	for _, group := range proj.PropertyGroups {
		if ns := strings.TrimSpace(group.RootNamespace); ns != "" {
			return ns, nil
		}
	}

	base := filepath.Base(projectFile)
	return strings.TrimSuffix(base, filepath.Ext(base)), nil
}
