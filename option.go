// Copyright 2025 TimeWtr
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logf

import "time"

type Options func(*Config)

// WithLevel 设置最低输出级别，如果不设置，默认级别是InfoLevel
func WithLevel(level Level) Options {
	return func(c *Config) {
		c.minLevel = level
	}
}

// WithTerminal 是否开启终端输出，默认开启
func WithTerminal(enabled bool) Options {
	return func(c *Config) {
		c.terminal = enabled
	}
}

// WithTerminalOutput 选择终端输出流，默认Stdout
func WithTerminalOutput(out Output) Options {
	return func(c *Config) {
		c.terminalOut = out
	}
}

// WithTerminalInterval 设置终端Sink的刷新周期
func WithTerminalInterval(interval time.Duration) Options {
	return func(c *Config) {
		c.terminalInterval = interval
	}
}

// WithFile 开启文件输出并设置日志文件路径
func WithFile(path string) Options {
	return func(c *Config) {
		c.file = true
		c.filePath = path
	}
}

// WithFileInterval 设置文件Sink的刷新周期
func WithFileInterval(interval time.Duration) Options {
	return func(c *Config) {
		c.fileInterval = interval
	}
}

// WithRollover 设置文件保留的最大行数，超出后只保留最新的N行，0表示关闭
func WithRollover(maxLines int) Options {
	return func(c *Config) {
		c.rollover = maxLines
	}
}

// WithRolloverInterval 设置文件裁剪循环的检查周期
func WithRolloverInterval(interval time.Duration) Options {
	return func(c *Config) {
		c.rolloverInterval = interval
	}
}

// WithLogFormat 设置日志行格式模板
func WithLogFormat(format string) Options {
	return func(c *Config) {
		c.logFormat = format
	}
}

// WithStructuredFormat 设置结构化字段格式模板
func WithStructuredFormat(format string) Options {
	return func(c *Config) {
		c.structuredFormat = format
	}
}

// WithTimezone 设置时间戳的时区，默认本地时区
func WithTimezone(tz TimeZone) Options {
	return func(c *Config) {
		c.timezone = tz
	}
}

// WithTimestampFormat 设置时间戳格式
func WithTimestampFormat(format string) Options {
	return func(c *Config) {
		c.timestampFormat = format
	}
}

// WithDailyRotation 开启每日轮转归档，每天凌晨把当前日志文件归档后清空
func WithDailyRotation() Options {
	return func(c *Config) {
		c.dailyRotate = true
	}
}

// WithCompressionLevel 设置归档文件的压缩级别，不设置则不压缩
func WithCompressionLevel(level CompressLevel) Options {
	return func(c *Config) {
		c.compressLevel = level
	}
}
