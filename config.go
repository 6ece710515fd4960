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

// Output 终端输出流的选择
type Output uint8

const (
	// Stdout 标准输出
	Stdout Output = iota
	// Stderr 标准错误
	Stderr
)

// TimeZone 时间戳使用的时区
type TimeZone uint8

const (
	// LocalTime 本地时区
	LocalTime TimeZone = iota
	// UTCTime UTC时区
	UTCTime
)

// location 返回时区对应的time.Location，供时间戳渲染和每日轮转的定时任务使用
func (t TimeZone) location() *time.Location {
	if t == UTCTime {
		return time.UTC
	}
	return time.Local
}

const (
	// DefaultLogFormat 默认的日志行格式模板
	DefaultLogFormat = "[{timestamp} {module_path}] {level}: {message}"
	// DefaultStructuredFormat 默认的结构化字段格式模板，逐个键值对追加到日志行尾部
	DefaultStructuredFormat = " | {key}={value}"
	// DefaultTimestampFormat 默认的时间戳格式
	DefaultTimestampFormat = "2006-01-02 15:04:05"
	// DefaultTerminalInterval 终端Sink默认的刷新周期
	DefaultTerminalInterval = 100 * time.Millisecond
	// DefaultFileInterval 文件Sink默认的刷新周期
	DefaultFileInterval = 100 * time.Millisecond
	// DefaultRolloverInterval 文件裁剪循环默认的检查周期
	DefaultRolloverInterval = 500 * time.Millisecond
)

// Config 日志配置状态，唯一的权威实例由Logger持有，读写锁保护。
// 每次日志调用和每个后台循环的每个周期都通过snapshot读取一份深拷贝，
// 拿到快照后无锁使用，保证读取方永远看到完整一致的配置，不会观测到
// 写入到一半的更新。多次Setter调用各自原子，互相之间不保证组合原子性。
type Config struct {
	// 是否开启终端输出
	terminal bool
	// 终端输出流的选择
	terminalOut Output
	// 终端专属的忽略级别集合
	terminalIgnore map[Level]struct{}
	// 终端Sink的刷新周期
	terminalInterval time.Duration

	// 是否开启文件输出
	file bool
	// 日志文件路径，为空表示未配置
	filePath string
	// 文件专属的忽略级别集合
	fileIgnore map[Level]struct{}
	// 文件Sink的刷新周期
	fileInterval time.Duration
	// 文件保留的最大行数，超出后裁剪只保留最新的N行，0表示关闭裁剪
	rollover int
	// 文件裁剪循环的检查周期
	rolloverInterval time.Duration

	// 最低输出级别，序数低于该级别的日志全部丢弃
	minLevel Level
	// 全局忽略级别集合，精确匹配，优先于最低输出级别
	ignore map[Level]struct{}
	// 旁路级别集合，集合内的级别跳过最低级别与全局忽略的过滤，
	// 仍受各Sink的开关和专属忽略集合约束
	bypass map[Level]struct{}
	// 日志行格式模板
	logFormat string
	// 结构化字段格式模板
	structuredFormat string
	// 时间戳的时区
	timezone TimeZone
	// 时间戳的格式
	timestampFormat string
	// 级别到样式列表的映射
	styles map[Level][]Style

	// 是否开启每日轮转归档
	dailyRotate bool
	// 归档文件的压缩级别，NoCompression表示不压缩
	compressLevel CompressLevel
}

func defaultConfig() *Config {
	return &Config{
		terminal:         true,
		terminalOut:      Stdout,
		terminalIgnore:   make(map[Level]struct{}),
		terminalInterval: DefaultTerminalInterval,
		fileIgnore:       make(map[Level]struct{}),
		fileInterval:     DefaultFileInterval,
		rolloverInterval: DefaultRolloverInterval,
		minLevel:         InfoLevel,
		ignore:           make(map[Level]struct{}),
		bypass:           map[Level]struct{}{DiagnosticLevel: {}},
		logFormat:        DefaultLogFormat,
		structuredFormat: DefaultStructuredFormat,
		timezone:         LocalTime,
		timestampFormat:  DefaultTimestampFormat,
		styles:           defaultStyles(),
		compressLevel:    NoCompression,
	}
}

// clone 深拷贝配置，包括所有集合与样式列表
func (c *Config) clone() *Config {
	cp := *c
	cp.terminalIgnore = cloneSet(c.terminalIgnore)
	cp.fileIgnore = cloneSet(c.fileIgnore)
	cp.ignore = cloneSet(c.ignore)
	cp.bypass = cloneSet(c.bypass)
	cp.styles = make(map[Level][]Style, len(c.styles))
	for lvl, styles := range c.styles {
		cp.styles[lvl] = append([]Style(nil), styles...)
	}
	return &cp
}

func cloneSet(src map[Level]struct{}) map[Level]struct{} {
	dst := make(map[Level]struct{}, len(src))
	for lvl := range src {
		dst[lvl] = struct{}{}
	}
	return dst
}

// passes 根据快照判断某级别是否通过全局过滤，旁路集合内的级别无条件通过
func (c *Config) passes(level Level) bool {
	if _, ok := c.bypass[level]; ok {
		return true
	}
	if level < c.minLevel {
		return false
	}
	_, ignored := c.ignore[level]
	return !ignored
}
