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
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New(
		WithLevel(DebugLevel),
		WithTerminalOutput(Stderr),
		WithTimezone(UTCTime))
	require.NoError(t, err)
	assert.NotNil(t, l)
	l.Close()
}

func TestNew_InvalidFilePath(t *testing.T) {
	base := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, writeFile(base))

	_, err := New(WithFile(filepath.Join(base, "app.log")))
	assert.Error(t, err)
}

func TestFileSink_FIFOOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New(
		WithTerminal(false),
		WithLevel(TraceLevel),
		WithLogFormat("{message}"),
		WithFile(path),
		WithFileInterval(20*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(l.Close)

	const n = 50
	for i := 0; i < n; i++ {
		l.Log(InfoLevel, "mod", fmt.Sprintf("entry-%03d", i))
	}

	assert.Eventually(t, func() bool {
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return false
		}
		return len(strings.Split(strings.TrimRight(string(data), "\n"), "\n")) == n
	}, 2*time.Second, 10*time.Millisecond)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("entry-%03d", i), line)
	}
}

func TestLog_ConcurrentProducers(t *testing.T) {
	l := newInspectLogger(t, WithLevel(TraceLevel))

	const n = 500
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Log(InfoLevel, "mod", fmt.Sprintf("concurrent-%d", i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, l.termq.size())
}

func TestClose_FlushesPendingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New(
		WithTerminal(false),
		WithLevel(TraceLevel),
		WithLogFormat("{message}"),
		WithFile(path),
		WithFileInterval(time.Hour))
	require.NoError(t, err)

	l.Log(InfoLevel, "mod", "flushed on close")
	l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flushed on close")
}

func TestSetDefault(t *testing.T) {
	l := newInspectLogger(t)
	prev := SetDefault(l)
	defer SetDefault(prev)

	assert.Same(t, l, L())
}

// ExampleNew 日志实例的基本用法
// 1. 创建实例并配置文件输出
// 2. 运行期间可随时链式调整配置
// 3. 即发即弃记录日志，需要感知失败时使用R前缀入口
func ExampleNew() {
	l, err := New(
		WithLevel(InfoLevel),
		WithFile("./logs/app.log"),
		WithRollover(10000))
	if err != nil {
		return
	}
	defer l.Close()

	l.SetTimezone(UTCTime).SetLogFormat("[{timestamp}] {level}: {message}")

	l.Info("service started")
	if rerr := l.RError("explicit failure signal"); rerr != nil {
		fmt.Println("log failed:", rerr)
	}
}
