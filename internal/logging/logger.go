package logging

import (
	"go.uber.org/zap"
)

// Init 初始化全局 zap 日志，之后通过 zap.L() 使用
func Init() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
