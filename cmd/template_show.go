package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/add-any-file/internal/template"
)

var templateShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "显示模板内容",
	Long: `显示模板文件的原始内容。名称可省略 .txt 后缀。

示例:
  addfile template show .cs
  addfile template show package.json.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment(cmd, ".")
		if err != nil {
			return err
		}

		name := args[0]
		if !strings.HasSuffix(strings.ToLower(name), template.TemplateSuffix) {
			name += template.TemplateSuffix
		}

		catalog := env.resolver.Catalog()
		entry, ok := catalog.Lookup(name)
		if !ok {
			return fmt.Errorf("模板不存在: %s", args[0])
		}
		content, err := catalog.Read(entry)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", catalog.DisplayPath(entry))
		fmt.Fprint(out, content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateShowCmd)
}
