// Package cli builds the localtax command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/local_tax/internal/assistant"
	"github.com/iWorld-y/local_tax/internal/config"
	"github.com/iWorld-y/local_tax/internal/logger"
	"github.com/iWorld-y/local_tax/internal/model"
)

// UsageError 命令行用法错误，对应退出码 2
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// newLogger 测试中可替换
var newLogger = logger.New

type options struct {
	year       int
	mode       string
	configPath string
	output     string
}

// NewRootCommand 创建根命令，now 用于计算 --year 的默认值
func NewRootCommand(out io.Writer, now func() time.Time) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "localtax",
		Short:         "LocalTax AI Assistant",
		Version:       assistant.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UsageError{Err: fmt.Errorf("unexpected arguments: %v", args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, out, opts)
		},
	}
	cmd.SetOut(out)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := cmd.Flags()
	flags.IntVar(&opts.year, "year", now().Year(), "tax year")
	flags.StringVar(&opts.mode, "mode", model.DefaultMode, "processing mode")
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "config path")
	flags.StringVar(&opts.output, "output", "text", "output format: text or json")

	return cmd
}

func run(cmd *cobra.Command, out io.Writer, opts *options) (err error) {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("unknown output format: %s", opts.output)
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("无法加载配置文件: %w", err)
	}

	log, closeLog, err := newLogger(logger.Options{
		Level:   cfg.Log.Level,
		File:    config.LogFile,
		Console: cfg.Log.Console,
	})
	if err != nil {
		return fmt.Errorf("无法初始化日志: %w", err)
	}
	defer func() {
		if cerr := closeLog(); cerr != nil && err == nil {
			err = fmt.Errorf("关闭日志文件失败: %w", cerr)
		}
	}()

	a := assistant.New(opts.configPath, log)
	result := a.RunTaxPipeline(cmd.Context(), assistant.RunOptions{
		Year: opts.year,
		Mode: opts.mode,
	})

	if opts.output == "json" {
		return json.NewEncoder(out).Encode(result)
	}
	_, err = fmt.Fprintf(out, "LocalTax AI Assistant completed: %s\n", result)
	return err
}
