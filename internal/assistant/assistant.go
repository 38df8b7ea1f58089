package assistant

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/local_tax/internal/config"
	"github.com/iWorld-y/local_tax/internal/model"
)

// Version 助手版本号
const Version = "2.0"

// Assistant 税务流水线编排器
type Assistant struct {
	configPath string
	log        *logrus.Logger
}

// New 创建助手实例
// configPath 只做保存，不在此处解析；log 为 nil 时日志被丢弃
func New(configPath string, log *logrus.Logger) *Assistant {
	if configPath == "" {
		configPath = config.DefaultPath
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	a := &Assistant{
		configPath: configPath,
		log:        log,
	}
	a.log.Infof("LocalTax AI Assistant v%s 启动", Version)
	return a
}

// ConfigPath 返回构造时传入的配置路径
func (a *Assistant) ConfigPath() string {
	return a.configPath
}

// RunOptions 运行选项
type RunOptions struct {
	Year int
	Mode string
}

// RunTaxPipeline 执行一次税务流水线
// 不校验输入，不依据 Mode 分支，结果原样回显 Year 和 Mode
func (a *Assistant) RunTaxPipeline(_ context.Context, opts RunOptions) *model.Result {
	a.log.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"mode":   opts.Mode,
	}).Infof("运行 %d 年度税务流水线", opts.Year)

	return &model.Result{
		Status: model.StatusSuccess,
		Year:   opts.Year,
		Mode:   opts.Mode,
	}
}
