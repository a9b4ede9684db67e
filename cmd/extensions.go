package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"nextloc/internal/classify"

	"github.com/spf13/cobra"
)

// newExtensionsCmd 创建 extensions 子命令。
// 命令用于展示参与计数的后缀、配置文件名以及被跳过的目录。
func newExtensionsCmd(registry *classify.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "extensions",
		Short: "展示参与计数的后缀、文件名与跳过的目录",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "GROUP\tMATCHES"); err != nil {
				return err
			}

			for _, item := range registry.Groups() {
				if _, err := fmt.Fprintf(writer, "%s\t%s\n", item.Name, strings.Join(item.Extensions, ", ")); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(writer, "Config files\t%s\n", strings.Join(registry.ConfigFiles(), ", ")); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(writer, "Ignored dirs\t%s\n", strings.Join(registry.IgnoredDirs(), ", ")); err != nil {
				return err
			}

			return writer.Flush()
		},
	}
}
