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
	"bufio"
	"io"
	"time"
)

// rolloverLoop 文件裁剪的后台循环，独立于文件Sink的刷新周期运行。
// 裁剪关闭（阈值为0）或文件未配置时空转。超过阈值时截断整个文件，
// 只把最新的threshold行按原有相对顺序写回。读取、截断和回写全程持
// 句柄锁，与文件Sink循环互斥，不会出现写入与截断交错破坏行边界。
func (l *Logger) rolloverLoop() error {
	for {
		interval := l.snapshot().rolloverInterval

		select {
		case <-l.done:
			return nil
		case <-time.After(interval):
		}

		if cfg := l.snapshot(); cfg.rollover > 0 && cfg.file && cfg.filePath != "" {
			l.rollover(cfg.rollover)
		}
	}
}

func (l *Logger) rollover(threshold int) {
	l.fmu.Lock()
	defer l.fmu.Unlock()

	if l.fh == nil {
		return
	}

	lines, err := readLines(l.fh)
	if err != nil {
		internalErrf("logf: rollover read failed, err: %v\n", err)
		return
	}
	if len(lines) <= threshold {
		return
	}

	// 标记仅用于外部观测（比如测试等待静默），互斥由句柄锁保证
	l.setRolling(true)
	defer l.setRolling(false)

	if err = l.fh.Truncate(0); err != nil {
		internalErrf("logf: rollover truncate failed, err: %v\n", err)
		return
	}
	if _, err = l.fh.Seek(0, io.SeekStart); err != nil {
		internalErrf("logf: rollover seek failed, err: %v\n", err)
		return
	}

	writer := bufio.NewWriter(l.fh)
	for _, line := range lines[len(lines)-threshold:] {
		if _, err = writer.WriteString(line + "\n"); err != nil {
			internalErrf("logf: rollover rewrite failed, err: %v\n", err)
			return
		}
	}

	if err = writer.Flush(); err != nil {
		internalErrf("logf: rollover flush failed, err: %v\n", err)
	}
}

// readLines 从文件头完整读取当前的日志行
func readLines(fh io.ReadSeeker) ([]string, error) {
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(fh)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
