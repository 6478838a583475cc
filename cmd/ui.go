package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/add-any-file/internal/i18n"
	"github.com/YangQing-Lin/add-any-file/internal/tui"
)

var uiForce bool

// promptRunner 运行交互式提示框（测试中可替换）
var promptRunner = runPrompt

var uiCmd = &cobra.Command{
	Use:   "ui [dir]",
	Short: "打开交互式提示框",
	Long:  "打开交互式提示框，边输入边预览将使用的模板与写入位置。",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		env, err := newEnvironment(cmd, dir)
		if err != nil {
			return err
		}
		return promptRunner(cmd, env, env.dir, uiForce)
	},
}

func init() {
	uiCmd.Flags().BoolVarP(&uiForce, "force", "f", false, "覆盖已存在的文件")
	rootCmd.AddCommand(uiCmd)
}

func runPrompt(cmd *cobra.Command, env *environment, dir string, overwrite bool) error {
	model := tui.New(env.ctx, env.resolver, env.request(), dir, overwrite)
	p := tea.NewProgram(model, tea.WithContext(env.ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("运行提示框失败: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	reportPrompt(cmd.OutOrStdout(), m)
	return nil
}

// reportPrompt 输出提示框中创建的条目，取消时也列出已创建的部分
func reportPrompt(w io.Writer, m tui.Model) {
	for _, item := range m.Created() {
		if backupPath, ok := m.Backup(item.Target()); ok {
			printBackup(w, item.Target(), backupPath)
		}
		printCreated(w, item)
	}
	if m.Cancelled() {
		fmt.Fprintln(w, i18n.T("tui.cancelled"))
	}
}
