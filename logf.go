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
	"path/filepath"
	"sync"

	"github.com/TimeWtr/logf/errorx"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Logger 进程级的日志实例，持有唯一权威的配置、两个Sink队列和共享的
// 文件句柄。调用方线程通过Log/StructuredLog把渲染好的日志行推入队列，
// 三个后台循环（终端Sink、文件Sink、文件裁剪）按各自周期消费。
// 所有组件通过句柄访问Logger而不是环境全局变量，测试中可以创建多个
// 互相独立的实例。
type Logger struct {
	// 配置读写锁，写入方持写锁原地修改，读取方持读锁做深拷贝快照
	mu sync.RWMutex
	// 唯一权威的配置实例
	cfg *Config

	// 终端Sink的内存队列
	termq *lineQueue
	// 文件Sink的内存队列
	fileq *lineQueue

	// 文件句柄锁，文件Sink循环、裁剪循环、每日轮转和ResultLog的同步
	// 写入共用这一把锁，保证不会出现交错写入破坏行边界
	fmu sync.Mutex
	// 共享的日志文件句柄，配置文件路径时惰性打开，进程生命周期内复用
	fh *os.File

	// 裁剪进行中的标记，供外部观测静默状态使用，正确性由fmu保证
	rmu     sync.RWMutex
	rolling bool

	// 后台循环管理
	eg   errgroup.Group
	done chan struct{}

	// 每日轮转的定时任务
	cr       *cron.Cron
	cronOnce sync.Once

	closeOnce sync.Once
}

// New 创建并启动一个Logger，三个后台循环随实例启动，进程生命周期内运行。
// 通过WithFile配置了日志文件时会立即创建父目录并打开文件，失败返回错误。
func New(opts ...Options) (*Logger, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	l := &Logger{
		cfg:   cfg,
		termq: newLineQueue(),
		fileq: newLineQueue(),
		done:  make(chan struct{}),
	}

	if cfg.filePath != "" {
		fh, err := openLogFile(cfg.filePath)
		if err != nil {
			return nil, err
		}
		l.fh = fh
	}

	l.eg.Go(l.terminalLoop)
	l.eg.Go(l.fileLoop)
	l.eg.Go(l.rolloverLoop)

	if cfg.dailyRotate {
		l.startRotateCron(cfg.timezone)
	}

	return l, nil
}

// snapshot 在读锁下深拷贝当前配置，拿到快照后无锁使用
func (l *Logger) snapshot() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg.clone()
}

// Snapshot 读取当前配置的完整深拷贝，拷贝与权威实例完全脱离，
// 后续的配置变更不会反映到已返回的快照上
func (l *Logger) Snapshot() *Config {
	return l.snapshot()
}

// openLogFile 创建父目录并以读+追加模式打开日志文件
func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", errorx.ErrDirCreate, err)
		}
	}

	fh, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorx.ErrFileOpen, err)
	}
	return fh, nil
}

// ensureFile 在文件句柄锁内保证句柄已打开，ResultLog和文件Sink需要在
// 句柄还未就绪时即时打开文件
func (l *Logger) ensureFile(path string) (*os.File, error) {
	if l.fh != nil {
		return l.fh, nil
	}

	fh, err := openLogFile(path)
	if err != nil {
		return nil, err
	}
	l.fh = fh
	return fh, nil
}

// RolloverInProgress 是否有一次文件裁剪正在进行，供测试等待静默状态使用
func (l *Logger) RolloverInProgress() bool {
	l.rmu.RLock()
	defer l.rmu.RUnlock()
	return l.rolling
}

func (l *Logger) setRolling(v bool) {
	l.rmu.Lock()
	l.rolling = v
	l.rmu.Unlock()
}

// Close 停止后台循环并做最后一次刷新，释放文件句柄。正常使用场景下
// Logger随进程存活，Close主要服务于测试和显式关停
func (l *Logger) Close() {
	l.closeOnce.Do(func() {
		close(l.done)
		_ = l.eg.Wait()

		if l.cr != nil {
			l.cr.Stop()
		}

		l.fmu.Lock()
		if l.fh != nil {
			_ = l.fh.Close()
			l.fh = nil
		}
		l.fmu.Unlock()
	})
}

// internalErrf 后台循环自身的错误上报，只写到标准错误并继续运行
func internalErrf(format string, args ...any) {
	_, _ = os.Stderr.WriteString(fmt.Sprintf(format, args...))
}
