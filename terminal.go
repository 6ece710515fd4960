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
	"os"
	"time"
)

// terminalLoop 终端Sink的后台循环。每个周期读取一次配置快照，原子地
// 取走终端队列的全部内容，逐行写入选定输出流的缓冲写入器后刷新。
// 队列锁只在取走内容时短暂持有，写入流的过程不持有任何锁。
func (l *Logger) terminalLoop() error {
	for {
		interval := l.snapshot().terminalInterval

		select {
		case <-l.done:
			// 关停前做最后一次排空
			l.flushTerminal(l.snapshot())
			return nil
		case <-time.After(interval):
		}

		l.flushTerminal(l.snapshot())
	}
}

func (l *Logger) flushTerminal(cfg *Config) {
	lines := l.termq.drain()
	if len(lines) == 0 {
		return
	}

	out := os.Stdout
	if cfg.terminalOut == Stderr {
		out = os.Stderr
	}

	writer := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			internalErrf("logf: terminal sink write failed, err: %v\n", err)
			return
		}
	}

	if err := writer.Flush(); err != nil {
		internalErrf("logf: terminal sink flush failed, err: %v\n", err)
	}
}
