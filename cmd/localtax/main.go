package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/iWorld-y/local_tax/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, time.Now))
}

// run 执行命令并返回退出码：成功 0，用法错误 2，其他错误 1
func run(args []string, stdout, stderr io.Writer, now func() time.Time) int {
	cmd := cli.NewRootCommand(stdout, now)
	// nil 会让 cobra 回退到 os.Args
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "localtax:", err)

		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(stderr, cmd.UsageString())
			return 2
		}
		return 1
	}
	return 0
}
