package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/YangQing-Lin/add-any-file/internal/i18n"
	"github.com/YangQing-Lin/add-any-file/internal/template"
)

var (
	resolveOutput string
	resolveDiff   bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "显示文件将使用的模板与内容（不写入）",
	Long: `显示指定文件名的解析结果：命中的模板、写入路径、名称与替换后的内容。

示例:
  addfile resolve Models/User.cs
  addfile resolve IRepository.cs --output json
  addfile resolve Program.cs --diff      # 与已有文件比较`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "text", "输出格式 (text|json|yaml)")
	resolveCmd.Flags().BoolVar(&resolveDiff, "diff", false, "与写入路径上已有的文件比较")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(filepath.FromSlash(args[0]))
	if err != nil {
		return err
	}
	env, err := newEnvironment(cmd, filepath.Dir(path))
	if err != nil {
		return err
	}

	req := env.request()
	req.FilePath = path
	res, err := env.resolver.Resolve(env.ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if resolveDiff {
		existing, err := os.ReadFile(res.WritePath)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("读取文件失败: %w", err)
		}
		diff := template.DiffAgainst(string(existing), res)
		if diff == template.NoDifferences {
			fmt.Fprintln(out, diff)
			return nil
		}
		fmt.Fprint(out, template.FormatDiffForCLI(diff))
		return nil
	}

	switch resolveOutput {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		printResult(out, res)
		return nil
	default:
		return fmt.Errorf("不支持的输出格式: %s", resolveOutput)
	}
}

// printResult 以文本形式输出解析结果
func printResult(w io.Writer, res *template.Result) {
	label := color.New(color.FgCyan).SprintFunc()

	tmpl := i18n.T("resolve.none")
	if res.HasTemplate() {
		tmpl = displayPath(res.TemplatePath)
	}
	fmt.Fprintf(w, "%s: %s\n", label(i18n.T("resolve.template")), tmpl)
	fmt.Fprintf(w, "%s: %s\n", label(i18n.T("resolve.write")), displayPath(res.WritePath))
	fmt.Fprintf(w, "%s: %s\n", label(i18n.T("resolve.items")), res.LongItemName)
	fmt.Fprintf(w, "%s: %s\n", label(i18n.T("resolve.extension")), res.Extension)
	fmt.Fprintf(w, "%s: %t\n", label(i18n.T("resolve.local")), res.IsLocal)
	if res.Content != "" {
		fmt.Fprintf(w, "%s:\n", label(i18n.T("resolve.content")))
		fmt.Fprintln(w, "────────────────────────────────────────")
		fmt.Fprintln(w, strings.ReplaceAll(res.Content, "\r\n", "\n"))
	}
}
