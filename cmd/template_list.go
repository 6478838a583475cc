package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/add-any-file/internal/i18n"
)

var templateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "列出模板",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment(cmd, ".")
		if err != nil {
			return err
		}

		catalog := env.resolver.Catalog()
		out := cmd.OutOrStdout()
		if catalog.Len() == 0 {
			fmt.Fprintln(out, i18n.T("catalog.empty"))
			return nil
		}

		fmt.Fprintln(out, color.New(color.Bold).Sprint(i18n.T("catalog.source", catalog.Source(), catalog.Len())))
		for _, entry := range catalog.Entries() {
			fmt.Fprintf(out, "  %-24s %s\n", entry.Key(), color.HiBlackString("%s", entry.Path))
		}
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateListCmd)
}
