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

// 进程级默认实例。组件通过L()拿到句柄后调用，而不是包内各处直接引用
// 全局状态，测试可以用SetDefault替换成独立实例。

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// L 返回进程级默认Logger，首次调用时以默认配置创建
func L() *Logger {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		if defaultLogger == nil {
			// 默认配置不涉及文件，不会返回错误
			defaultLogger, _ = New()
		}
		defaultMu.Unlock()
	})

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault 替换进程级默认Logger，返回之前的实例（可能为nil）
func SetDefault(l *Logger) *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultLogger
	defaultLogger = l
	return prev
}
