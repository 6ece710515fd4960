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

// fileLoop 文件Sink的后台循环，形态与终端Sink一致。文件输出未开启或
// 句柄未就绪时本周期空转。写入阶段持句柄锁，与裁剪循环、每日轮转和
// ResultLog的同步写入互斥，队列锁在取走内容后立即释放。
func (l *Logger) fileLoop() error {
	for {
		interval := l.snapshot().fileInterval

		select {
		case <-l.done:
			if cfg := l.snapshot(); cfg.file && cfg.filePath != "" {
				l.flushFile(cfg.filePath)
			}
			return nil
		case <-time.After(interval):
		}

		if cfg := l.snapshot(); cfg.file && cfg.filePath != "" {
			l.flushFile(cfg.filePath)
		}
	}
}

func (l *Logger) flushFile(path string) {
	lines := l.fileq.drain()
	if len(lines) == 0 {
		return
	}

	l.fmu.Lock()
	defer l.fmu.Unlock()

	if _, err := l.ensureFile(path); err != nil {
		// 句柄打不开时放回队列等待下个周期，文件Sink静默跳过本轮
		l.fileq.requeue(lines)
		return
	}

	if _, err := l.fh.Seek(0, io.SeekEnd); err != nil {
		internalErrf("logf: file sink seek failed, err: %v\n", err)
		return
	}

	writer := bufio.NewWriter(l.fh)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			internalErrf("logf: file sink write failed, err: %v\n", err)
			return
		}
	}

	if err := writer.Flush(); err != nil {
		internalErrf("logf: file sink flush failed, err: %v\n", err)
	}
}
