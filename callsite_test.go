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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallSite(t *testing.T) {
	site := callSite(1)
	assert.Contains(t, site, "callsite_test.go:")
}

func TestLeveled_CapturesCallSite(t *testing.T) {
	l := newInspectLogger(t, WithLevel(TraceLevel), WithLogFormat("{module_path}"))

	l.Info("captured")

	// 便捷入口跳过自身一层，调用点落在测试文件
	lines := l.termq.drain()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "callsite_test.go:")
}
