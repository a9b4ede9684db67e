// main.go 是 nextloc 的程序入口。
// 该文件仅负责注入版本号、执行 Cobra 根命令并把错误映射为退出码。
package main

import (
	"errors"
	"fmt"
	"os"

	"nextloc/cmd"
)

// version 默认值为 dev。
// 发布时可以通过 -ldflags "-X main.version=vX.Y.Z" 覆盖该值。
var version = "dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "nextloc error: %v\n", err)
		os.Exit(1)
	}
}
