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

import "sync"

// lineQueue 单个Sink的内存队列，保存已经渲染完成的日志行。
// 生产方是Dispatch，消费方是对应的Sink循环。锁只保护追加和整体交换，
// 不会跨越任何I/O持有，保证生产方不被慢速写入阻塞。
type lineQueue struct {
	mu    sync.Mutex
	lines []string
}

func newLineQueue() *lineQueue {
	return &lineQueue{}
}

func (q *lineQueue) push(line string) {
	q.mu.Lock()
	q.lines = append(q.lines, line)
	q.mu.Unlock()
}

// drain 原子地取走并清空队列的全部内容，保持入队顺序
func (q *lineQueue) drain() []string {
	q.mu.Lock()
	lines := q.lines
	q.lines = nil
	q.mu.Unlock()
	return lines
}

// requeue 把取走但尚未写出的行放回队列头部，保持FIFO顺序
func (q *lineQueue) requeue(lines []string) {
	if len(lines) == 0 {
		return
	}
	q.mu.Lock()
	q.lines = append(lines, q.lines...)
	q.mu.Unlock()
}

func (q *lineQueue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.lines)
}
