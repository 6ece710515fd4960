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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/TimeWtr/logf/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newInspectLogger 创建一个刷新周期极长的Logger，队列内容不会被后台
// 循环取走，测试可以直接检查入队结果
func newInspectLogger(t *testing.T, opts ...Options) *Logger {
	t.Helper()

	opts = append([]Options{
		WithTerminalInterval(time.Hour),
		WithFileInterval(time.Hour),
		WithRolloverInterval(time.Hour),
	}, opts...)
	l, err := New(opts...)
	require.NoError(t, err)
	t.Cleanup(l.Close)
	return l
}

func TestLog_MinLevelFiltering(t *testing.T) {
	l := newInspectLogger(t, WithLevel(WarningLevel))

	l.Log(InfoLevel, "mod", "below threshold")
	assert.Equal(t, 0, l.termq.size())
	assert.Equal(t, 0, l.fileq.size())

	l.Log(ErrorLevel, "mod", "above threshold")
	assert.Equal(t, 1, l.termq.size())
}

func TestLog_NoneSuppressesEverything(t *testing.T) {
	l := newInspectLogger(t)
	l.SetLevel(NoneLevel).ClearBypass(DiagnosticLevel)

	l.Log(FatalLevel, "mod", "most severe")
	l.Log(CriticalLevel, "mod", "critical")
	l.Log(DiagnosticLevel, "mod", "diag")
	assert.Equal(t, 0, l.termq.size())
	assert.Equal(t, 0, l.fileq.size())
}

func TestLog_GlobalIgnoreIndependentOfMinLevel(t *testing.T) {
	l := newInspectLogger(t, WithLevel(TraceLevel))
	l.SetIgnore(ErrorLevel)

	// ErrorLevel高于最低级别，但命中全局忽略集合
	l.Log(ErrorLevel, "mod", "ignored exactly")
	assert.Equal(t, 0, l.termq.size())

	l.Log(WarningLevel, "mod", "not ignored")
	assert.Equal(t, 1, l.termq.size())
}

func TestLog_SinkIgnoreIsPerSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l := newInspectLogger(t, WithLevel(TraceLevel), WithFile(path))
	l.SetFileIgnore(InfoLevel)

	l.Log(InfoLevel, "mod", "file suppressed")
	assert.Equal(t, 1, l.termq.size())
	assert.Equal(t, 0, l.fileq.size())

	l.SetTerminalIgnore(WarningLevel)
	l.Log(WarningLevel, "mod", "terminal suppressed")
	assert.Equal(t, 1, l.termq.size())
	assert.Equal(t, 1, l.fileq.size())
}

func TestLog_DiagnosticBypass(t *testing.T) {
	l := newInspectLogger(t, WithLevel(NoneLevel))

	// 旁路集合内的级别无视最低级别与全局忽略
	l.SetIgnore(DiagnosticLevel)
	l.Log(DiagnosticLevel, "mod", "bypasses filters")
	assert.Equal(t, 1, l.termq.size())

	l.ClearBypass(DiagnosticLevel)
	l.Log(DiagnosticLevel, "mod", "filtered now")
	assert.Equal(t, 1, l.termq.size())
}

func TestLog_LevelSubstitutionPerSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := newInspectLogger(t,
		WithLevel(TraceLevel),
		WithLogFormat("{level} - {message}"),
		WithFile(path))

	l.Log(InfoLevel, "mod", "Test message")

	// 文件行使用纯文本标签
	assert.Equal(t, []string{"INFO - Test message"}, l.fileq.drain())
	// 终端行包含标签本体，样式渲染依终端能力而定
	lines := l.termq.drain()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "INFO")
	assert.Contains(t, lines[0], "Test message")
}

func TestLog_FileSinkWritesAndDisable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New(
		WithTerminal(false),
		WithLevel(TraceLevel),
		WithFile(path),
		WithFileInterval(20*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(l.Close)

	l.Log(InfoLevel, "mod", "first message")
	assert.Eventually(t, func() bool {
		data, rerr := os.ReadFile(path)
		return rerr == nil && strings.Contains(string(data), "first message")
	}, 2*time.Second, 10*time.Millisecond)

	l.SetFile(false)
	l.Log(InfoLevel, "mod", "second message")
	time.Sleep(100 * time.Millisecond)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first message")
	assert.NotContains(t, string(data), "second message")
}

func TestStructuredLog_AppendsFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := newInspectLogger(t,
		WithLevel(TraceLevel),
		WithLogFormat("{message}"),
		WithFile(path))

	l.StructuredLog(InfoLevel, "mod", "login ok", Fields{"user": "alice", "ip": "10.0.0.1"})

	lines := l.fileq.drain()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "login ok")
	assert.Contains(t, lines[0], " | user=alice")
	assert.Contains(t, lines[0], " | ip=10.0.0.1")
}

func TestResultLog_SynchronousFileWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "app.log")
	l := newInspectLogger(t,
		WithTerminal(false),
		WithLevel(TraceLevel),
		WithFile(path))

	// 同步路径绕过队列，返回后立即可见
	require.NoError(t, l.ResultLog(ErrorLevel, "mod", "sync write"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sync write")
	assert.Contains(t, string(data), "ERROR")
}

func TestResultLog_FileNotConfigured(t *testing.T) {
	l := newInspectLogger(t, WithTerminal(false), WithLevel(TraceLevel))
	l.SetFile(true)

	err := l.ResultLog(InfoLevel, "mod", "no path set")
	assert.ErrorIs(t, err, errorx.ErrFileNotConfigured)
}

func TestResultLog_FilteredReturnsNil(t *testing.T) {
	l := newInspectLogger(t, WithLevel(NoneLevel))
	assert.NoError(t, l.ResultLog(InfoLevel, "mod", "dropped silently"))
}

func TestLog_DebugEnabledInDebugBuild(t *testing.T) {
	l := newInspectLogger(t, WithLevel(TraceLevel))

	l.Debug("debug build active")
	assert.Equal(t, 1, l.termq.size())
}
