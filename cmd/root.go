// Package cmd 提供 nextloc 的命令行入口与子命令编排。
package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nextloc/internal/classify"
	"nextloc/internal/ctxlog"
	"nextloc/internal/report"
	"nextloc/internal/scanner"

	"github.com/spf13/cobra"
)

// ExitError 携带进程退出码；Message 非空时由 main 打印到 stderr。
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Message
}

// rootOptions 存放根命令的可配置参数。
type rootOptions struct {
	format   string
	logLevel string
}

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := classify.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
// scanOptions 透传给 scanner.NewService。
// 示例：
//
//	nextloc ./my-nextjs-app
//	nextloc ./my-nextjs-app --format json
func newRootCmd(version string, registry *classify.Registry, scanOptions ...scanner.Option) *cobra.Command {
	options := rootOptions{
		format:   "table",
		logLevel: "warn",
	}

	rootCmd := &cobra.Command{
		Use:   "nextloc <project_path>",
		Short: "统计 Next.js 项目的代码行数",
		Long: "nextloc 遍历项目目录（跳过 node_modules、.next、.git 等目录），\n" +
			"按后缀统计 total/code/blank 行数并输出汇总表。",
		Args:          exactlyOneProjectPath,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" {
				return errors.New("unsupported format, allowed values: table, json")
			}

			logger, ok := ctxlog.New(cmd.ErrOrStderr(), options.logLevel)
			if !ok {
				return fmt.Errorf("unsupported log level %q, allowed values: debug, info, warn, error", options.logLevel)
			}
			ctx := ctxlog.WithLogger(context.Background(), logger)

			service := scanner.NewService(registry, scanOptions...)
			result, err := service.ScanPath(ctx, args[0])
			if err != nil {
				if errors.Is(err, scanner.ErrInvalidRoot) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
					return &ExitError{Code: 1}
				}
				return err
			}

			if format == "json" {
				return report.PrintJSON(cmd.OutOrStdout(), result)
			}
			return report.PrintTable(cmd.OutOrStdout(), result)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table 或 json")
	rootCmd.Flags().StringVar(&options.logLevel, "log-level", options.logLevel, "诊断日志级别: debug, info, warn, error")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newExtensionsCmd(registry))

	return rootCmd
}

// exactlyOneProjectPath 在参数个数不为 1 时打印用法并要求以状态码 1 退出。
func exactlyOneProjectPath(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return nil
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Usage: nextloc <project_path>")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Example: nextloc ./my-nextjs-app")
	return &ExitError{Code: 1}
}
