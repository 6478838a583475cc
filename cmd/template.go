package cmd

import (
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tpl"},
	Short:   "查看模板目录",
	Long:    "查看当前生效的模板目录及其中的模板文件。",
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
