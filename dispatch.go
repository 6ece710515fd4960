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
	"os"
	"time"

	"github.com/TimeWtr/logf/errorx"
)

// Fields 结构化日志的键值对集合，输出顺序不作保证
type Fields map[string]string

// Log 即发即弃的日志入口。读取配置快照做级别过滤，渲染格式模板后把
// 完成的日志行推入启用的Sink队列，调用线程上不发生任何I/O，永不阻塞、
// 永不返回错误。实际写入由后台Sink循环在各自的刷新周期内完成。
func (l *Logger) Log(level Level, modulePath, message string) {
	if level.debugOnly() && !debugBuild {
		return
	}

	cfg := l.snapshot()
	if !cfg.passes(level) {
		return
	}

	line := formatBase(cfg.logFormat, modulePath, message, cfg.timestamp(time.Now()))
	l.enqueue(cfg, level, line)
}

// StructuredLog 结构化日志入口，过滤规则与Log一致，渲染时在日志行尾部
// 按结构化模板追加键值对片段
func (l *Logger) StructuredLog(level Level, modulePath, message string, fields Fields) {
	if level.debugOnly() && !debugBuild {
		return
	}

	cfg := l.snapshot()
	if !cfg.passes(level) {
		return
	}

	line := formatStructured(cfg.logFormat, modulePath, message,
		cfg.timestamp(time.Now()), cfg.structuredFormat, fields)
	l.enqueue(cfg, level, line)
}

// enqueue 按Sink独立判定后入队，{level}占位符在这里做Sink专属替换
func (l *Logger) enqueue(cfg *Config, level Level, line string) {
	if cfg.terminal {
		if _, ignored := cfg.terminalIgnore[level]; !ignored {
			styled := render(cfg.styles[level], level.String())
			l.termq.push(formatLevel(line, styled))
		}
	}

	if cfg.file && cfg.filePath != "" {
		if _, ignored := cfg.fileIgnore[level]; !ignored {
			l.fileq.push(formatLevel(line, level.String()))
		}
	}
}

// ResultLog 同步日志入口，面向需要显式感知失败的调用方。绕过队列和
// 后台循环，在调用线程上直接完成文件写入和终端输出，任何一步失败都
// 返回具体的错误。文件写入与文件Sink循环、裁剪循环共用同一把句柄锁，
// 避免交错写入
func (l *Logger) ResultLog(level Level, modulePath, message string) error {
	if level.debugOnly() && !debugBuild {
		return nil
	}

	cfg := l.snapshot()
	if !cfg.passes(level) {
		return nil
	}

	line := formatBase(cfg.logFormat, modulePath, message, cfg.timestamp(time.Now()))

	if cfg.file {
		if _, ignored := cfg.fileIgnore[level]; !ignored {
			if err := l.syncFileWrite(cfg, formatLevel(line, level.String())); err != nil {
				return err
			}
		}
	}

	if cfg.terminal {
		if _, ignored := cfg.terminalIgnore[level]; !ignored {
			styled := render(cfg.styles[level], level.String())
			if err := writeStream(cfg.terminalOut, formatLevel(line, styled)); err != nil {
				return err
			}
		}
	}

	return nil
}

// syncFileWrite 在句柄锁内即时打开（如需要）并追加一行到日志文件
func (l *Logger) syncFileWrite(cfg *Config, line string) error {
	if cfg.filePath == "" {
		return errorx.ErrFileNotConfigured
	}

	l.fmu.Lock()
	defer l.fmu.Unlock()

	fh, err := l.ensureFile(cfg.filePath)
	if err != nil {
		return err
	}

	if _, err = fh.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("%w: %v", errorx.ErrFileWrite, err)
	}
	return nil
}

// writeStream 同步写一行到选定的终端流
func writeStream(out Output, line string) error {
	w := os.Stdout
	if out == Stderr {
		w = os.Stderr
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("%w: %v", errorx.ErrTerminalWrite, err)
	}
	return nil
}
