package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/add-any-file/internal/backup"
	"github.com/YangQing-Lin/add-any-file/internal/i18n"
)

var backupsCmd = &cobra.Command{
	Use:   "backups <path>",
	Short: "列出文件被 --force 覆盖前的备份",
	Long: `列出 new --force / ui --force 覆盖文件前保存的备份（最新的在前）。
备份位于项目根目录下的 .addfile/backups。

示例:
  addfile backups Models/User.cs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(filepath.FromSlash(args[0]))
		if err != nil {
			return err
		}
		env, err := newEnvironment(cmd, filepath.Dir(path))
		if err != nil {
			return err
		}

		backups, err := backup.ListBackups(env.project.Root, path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(backups) == 0 {
			fmt.Fprintln(out, i18n.T("backup.none", displayPath(path)))
			return nil
		}

		fmt.Fprintln(out, color.New(color.Bold).Sprint(i18n.T("backup.list", displayPath(path), len(backups))))
		for _, b := range backups {
			fmt.Fprintf(out, "  %s  %6d  %s\n",
				b.Timestamp.Local().Format("2006-01-02 15:04:05"), b.Size, displayPath(b.Path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupsCmd)
}
