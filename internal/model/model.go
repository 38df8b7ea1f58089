package model

import "fmt"

const (
	// StatusSuccess 流水线成功标识，目前是唯一可能的状态
	StatusSuccess = "success"
	// DefaultMode 默认处理模式
	DefaultMode = "full"
)

// Result 流水线运行结果
type Result struct {
	Status string `json:"status"`
	Year   int    `json:"year"` // 税务年度
	Mode   string `json:"mode"` // 处理模式，原样回显
}

func (r Result) String() string {
	return fmt.Sprintf("{status: %s, year: %d, mode: %s}", r.Status, r.Year, r.Mode)
}
