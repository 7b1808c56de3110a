// Package logger 基于zerolog的全局日志初始化
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options 日志配置
type Options struct {
	Level  string // debug | info | warn | error
	Format string // console | json
	Output string // stdout | stderr
}

// Init 初始化全局logger
// console格式用于本地开发,json格式用于生产环境(便于ELK/Loki采集)
func Init(opts Options) {
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stdout
	if opts.Output == "stderr" {
		out = os.Stderr
	}
	if strings.EqualFold(opts.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "2006/01/02 15:04:05"}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(ParseLevel(opts.Level))
}

// ParseLevel 解析日志级别,无法识别时回退到info
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Component 返回带component字段的子logger
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
