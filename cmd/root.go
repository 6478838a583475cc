package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	projectRoot  string
	namespace    string
	templatesDir string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "addfile",
	Short: "按模板创建新文件",
	Long: `addfile 根据目标文件名选择模板，替换命名空间与名称后创建新文件。

模板查找顺序：
  1. 目标目录向上（最多 3 层，不越过项目根目录）的 *.template 本地模板
  2. 模板目录中与文件名完全一致的 <文件名>.txt
  3. 模板目录中的 <扩展名>.txt（I 开头的接口名优先使用 <扩展名>-interface.txt）

使用方法：
  addfile new Models/User.cs        创建文件
  addfile new "a.cs, b.cs" Views/   一次创建多个文件或目录
  addfile resolve Foo.cs            查看解析结果
  addfile template list             列出模板`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&projectRoot, "root", "", "项目根目录（默认向上查找 .csproj/go.mod/.git 等）")
	flags.StringVar(&namespace, "namespace", "", "项目根命名空间（默认读取项目文件）")
	flags.StringVar(&templatesDir, "templates", "", "模板目录（默认为程序目录下的 Templates）")
	flags.BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")

	// 自定义帮助模板
	rootCmd.SetHelpTemplate(`{{.Long}}

{{if .HasAvailableSubCommands}}可用命令:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}

{{if .HasAvailableLocalFlags}}选项:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

使用 "{{.CommandPath}} [command] --help" 获取更多关于命令的信息。
`)
}
