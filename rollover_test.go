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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollover_KeepsLastNLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := newInspectLogger(t,
		WithTerminal(false),
		WithLevel(TraceLevel),
		WithLogFormat("{message}"),
		WithFile(path),
		WithRollover(3))

	for i := 1; i <= 10; i++ {
		require.NoError(t, l.ResultLog(InfoLevel, "mod", fmt.Sprintf("line-%d", i)))
	}

	l.rollover(3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, []string{"line-8", "line-9", "line-10"}, got)
	assert.False(t, l.RolloverInProgress())
}

func TestRollover_UnderThresholdUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := newInspectLogger(t,
		WithTerminal(false),
		WithLevel(TraceLevel),
		WithLogFormat("{message}"),
		WithFile(path),
		WithRollover(10))

	for i := 1; i <= 3; i++ {
		require.NoError(t, l.ResultLog(InfoLevel, "mod", fmt.Sprintf("line-%d", i)))
	}

	l.rollover(10)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line-1\nline-2\nline-3\n", string(data))
}

func TestRolloverLoop_TriggersOverThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New(
		WithTerminal(false),
		WithLevel(TraceLevel),
		WithLogFormat("{message}"),
		WithFile(path),
		WithFileInterval(time.Hour),
		WithRollover(2),
		WithRolloverInterval(20*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(l.Close)

	for i := 1; i <= 6; i++ {
		require.NoError(t, l.ResultLog(InfoLevel, "mod", fmt.Sprintf("line-%d", i)))
	}

	assert.Eventually(t, func() bool {
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return false
		}
		got := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		return len(got) == 2 && got[0] == "line-5" && got[1] == "line-6"
	}, 2*time.Second, 10*time.Millisecond)
	assert.False(t, l.RolloverInProgress())
}
