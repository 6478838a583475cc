package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/YangQing-Lin/add-any-file/internal/backup"
	"github.com/YangQing-Lin/add-any-file/internal/i18n"
	"github.com/YangQing-Lin/add-any-file/internal/logger"
	"github.com/YangQing-Lin/add-any-file/internal/template"
	"github.com/YangQing-Lin/add-any-file/internal/utils"
)

var (
	newDir    string
	newForce  bool
	newDryRun bool
)

// stdinIsTerminal 判断是否可以打开交互式提示框（测试中可替换）
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var newCmd = &cobra.Command{
	Use:   "new [name...]",
	Short: "创建一个或多个文件/目录",
	Long: `按模板创建文件。多个名称可用空格或逗号分隔，以 / 结尾的名称创建目录。

示例:
  addfile new User.cs
  addfile new Models/User.cs IRepository.cs
  addfile new "Views/, site.css" --in src/Web
  addfile new                                 # 打开交互式提示框`,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newDir, "in", ".", "新文件所在目录")
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "覆盖已存在的文件")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "只显示将要创建的文件")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd, newDir)
	if err != nil {
		return err
	}
	names := template.SplitNames(args)
	if len(names) == 0 {
		if !newDryRun && stdinIsTerminal() {
			return promptRunner(cmd, env, env.dir, newForce)
		}
		return errors.New(i18n.T("file.none_requested"))
	}

	items, err := env.resolver.Plan(env.ctx, env.request(), env.dir, names)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if newDryRun {
		for _, item := range items {
			fmt.Fprintln(out, i18n.T("file.dry_run", displayPath(item.Target())))
		}
		return nil
	}

	log := logger.FromContext(env.ctx)
	var failed []string
	for _, item := range items {
		backupPath, err := backup.Apply(env.project.Root, item, newForce)
		if backupPath != "" {
			printBackup(out, item.Target(), backupPath)
		}
		if err != nil {
			if errors.Is(err, utils.ErrFileExists) {
				err = errors.New(i18n.T("file.exists", displayPath(item.Target())))
			}
			log.Debug("create failed", "input", item.Input, "error", err)
			fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("✗ %v", err))
			failed = append(failed, item.Input)
			continue
		}
		printCreated(out, item)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d/%d failed", len(failed), len(items))
	}
	return nil
}

// printCreated 输出一个已创建的条目
func printCreated(w io.Writer, item template.Item) {
	green := color.New(color.FgGreen)
	target := displayPath(item.Target())
	switch {
	case item.Folder:
		green.Fprintf(w, "✓ %s\n", i18n.T("folder.created", target))
	case item.Result.HasTemplate():
		green.Fprintf(w, "✓ %s\n", i18n.T("file.created_from", target, displayPath(item.Result.TemplatePath)))
	default:
		green.Fprintf(w, "✓ %s\n", i18n.T("file.created", target))
	}
}

// printBackup 输出覆盖前保存的备份位置
func printBackup(w io.Writer, target, backupPath string) {
	color.New(color.FgYellow).Fprintln(w, i18n.T("backup.created", displayPath(target), displayPath(backupPath)))
}

// displayPath 在当前目录之下的路径显示为相对路径
func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
