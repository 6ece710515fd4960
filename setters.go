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

import (
	"fmt"
	"time"

	"github.com/TimeWtr/logf/errorx"
)

// 运行时配置变更接口。每个Setter独立原子：持写锁修改唯一权威配置后返回，
// 下一次快照读取即可见。变更对各后台循环的生效延迟最多为该循环的刷新周期。
// Setter返回*Logger支持链式调用。

// SetTerminal 开启或关闭终端输出
func (l *Logger) SetTerminal(enabled bool) *Logger {
	l.mu.Lock()
	l.cfg.terminal = enabled
	l.mu.Unlock()
	return l
}

// SetTerminalOutput 切换终端输出流
func (l *Logger) SetTerminalOutput(out Output) *Logger {
	l.mu.Lock()
	l.cfg.terminalOut = out
	l.mu.Unlock()
	return l
}

// SetTerminalIgnore 向终端专属忽略集合添加一个级别
func (l *Logger) SetTerminalIgnore(level Level) *Logger {
	l.mu.Lock()
	l.cfg.terminalIgnore[level] = struct{}{}
	l.mu.Unlock()
	return l
}

// SetTerminalInterval 设置终端Sink的刷新周期
func (l *Logger) SetTerminalInterval(interval time.Duration) *Logger {
	l.mu.Lock()
	l.cfg.terminalInterval = interval
	l.mu.Unlock()
	return l
}

// SetFile 开启或关闭文件输出
func (l *Logger) SetFile(enabled bool) *Logger {
	l.mu.Lock()
	l.cfg.file = enabled
	l.mu.Unlock()
	return l
}

// SetPath 设置日志文件路径，立即创建父目录并打开文件。失败时向标准
// 错误输出报告并保持文件未配置状态，需要检查结果时使用SetPathChecked
func (l *Logger) SetPath(path string) *Logger {
	if err := l.SetPathChecked(path); err != nil {
		internalErrf("logf: set path failed, path: %s, err: %v\n", path, err)
	}
	return l
}

// SetPathChecked 设置日志文件路径并返回打开文件过程中的错误
func (l *Logger) SetPathChecked(path string) error {
	fh, err := openLogFile(path)
	if err != nil {
		return err
	}

	l.fmu.Lock()
	if l.fh != nil {
		_ = l.fh.Close()
	}
	l.fh = fh
	l.fmu.Unlock()

	l.mu.Lock()
	l.cfg.filePath = path
	l.mu.Unlock()
	return nil
}

// SetFileIgnore 向文件专属忽略集合添加一个级别
func (l *Logger) SetFileIgnore(level Level) *Logger {
	l.mu.Lock()
	l.cfg.fileIgnore[level] = struct{}{}
	l.mu.Unlock()
	return l
}

// SetFileInterval 设置文件Sink的刷新周期
func (l *Logger) SetFileInterval(interval time.Duration) *Logger {
	l.mu.Lock()
	l.cfg.fileInterval = interval
	l.mu.Unlock()
	return l
}

// SetRollover 设置文件保留的最大行数，0表示关闭裁剪
func (l *Logger) SetRollover(maxLines int) *Logger {
	l.mu.Lock()
	l.cfg.rollover = maxLines
	l.mu.Unlock()
	return l
}

// SetRolloverInterval 设置文件裁剪循环的检查周期
func (l *Logger) SetRolloverInterval(interval time.Duration) *Logger {
	l.mu.Lock()
	l.cfg.rolloverInterval = interval
	l.mu.Unlock()
	return l
}

// SetLevel 设置最低输出级别，设置为NoneLevel时抑制所有级别
func (l *Logger) SetLevel(level Level) *Logger {
	l.mu.Lock()
	l.cfg.minLevel = level
	l.mu.Unlock()
	return l
}

// SetIgnore 向全局忽略集合添加一个级别，精确匹配，独立于最低输出级别
func (l *Logger) SetIgnore(level Level) *Logger {
	l.mu.Lock()
	l.cfg.ignore[level] = struct{}{}
	l.mu.Unlock()
	return l
}

// SetBypass 把一个级别加入旁路集合，跳过最低级别与全局忽略的过滤
func (l *Logger) SetBypass(level Level) *Logger {
	l.mu.Lock()
	l.cfg.bypass[level] = struct{}{}
	l.mu.Unlock()
	return l
}

// ClearBypass 把一个级别移出旁路集合
func (l *Logger) ClearBypass(level Level) *Logger {
	l.mu.Lock()
	delete(l.cfg.bypass, level)
	l.mu.Unlock()
	return l
}

// SetLogFormat 设置日志行格式模板
func (l *Logger) SetLogFormat(format string) *Logger {
	l.mu.Lock()
	l.cfg.logFormat = format
	l.mu.Unlock()
	return l
}

// SetStructuredFormat 设置结构化字段格式模板
func (l *Logger) SetStructuredFormat(format string) *Logger {
	l.mu.Lock()
	l.cfg.structuredFormat = format
	l.mu.Unlock()
	return l
}

// SetTimezone 设置时间戳的时区。每日轮转的定时任务在启动时固定时区，
// 之后的时区变更只影响时间戳渲染
func (l *Logger) SetTimezone(tz TimeZone) *Logger {
	l.mu.Lock()
	l.cfg.timezone = tz
	l.mu.Unlock()
	return l
}

// SetTimestampFormat 设置时间戳格式
func (l *Logger) SetTimestampFormat(format string) *Logger {
	l.mu.Lock()
	l.cfg.timestampFormat = format
	l.mu.Unlock()
	return l
}

// SetDailyRotation 开启或关闭每日轮转归档，首次开启时启动定时任务
func (l *Logger) SetDailyRotation(enabled bool) *Logger {
	l.mu.Lock()
	l.cfg.dailyRotate = enabled
	tz := l.cfg.timezone
	l.mu.Unlock()

	if enabled {
		l.startRotateCron(tz)
	}
	return l
}

// SetCompressionLevel 设置每日轮转归档文件的压缩级别
func (l *Logger) SetCompressionLevel(level CompressLevel) *Logger {
	l.mu.Lock()
	l.cfg.compressLevel = level
	l.mu.Unlock()
	return l
}

// SetStyles 整体替换一个级别的样式列表
func (l *Logger) SetStyles(level Level, styles ...Style) *Logger {
	l.mu.Lock()
	l.cfg.styles[level] = append([]Style(nil), styles...)
	l.mu.Unlock()
	return l
}

// AddStyle 向一个级别的样式列表追加样式，级别没有预置样式条目时报错。
// 默认配置预置了所有级别的条目，正常使用不会触发
func (l *Logger) AddStyle(level Level, style Style) error {
	if !style.valid() {
		return fmt.Errorf("%w: %d", errorx.ErrInvalidStyle, style)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	styles, ok := l.cfg.styles[level]
	if !ok {
		return fmt.Errorf("%w: %s", errorx.ErrNoStyleEntry, level)
	}

	for _, s := range styles {
		if s == style {
			return nil
		}
	}
	l.cfg.styles[level] = append(styles, style)
	return nil
}

// RemoveStyle 从一个级别的样式列表移除样式，级别没有预置样式条目时报错
func (l *Logger) RemoveStyle(level Level, style Style) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	styles, ok := l.cfg.styles[level]
	if !ok {
		return fmt.Errorf("%w: %s", errorx.ErrNoStyleEntry, level)
	}

	for i, s := range styles {
		if s == style {
			l.cfg.styles[level] = append(styles[:i], styles[i+1:]...)
			break
		}
	}
	return nil
}

// Styles 查询一个级别当前的样式列表，返回深拷贝
func (l *Logger) Styles(level Level) []Style {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Style(nil), l.cfg.styles[level]...)
}
