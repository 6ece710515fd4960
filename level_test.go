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
)

func TestLevel_Ordering(t *testing.T) {
	ordered := []Level{
		TraceLevel, DebugLevel, InfoLevel, WarningLevel,
		ErrorLevel, CriticalLevel, FatalLevel, DiagnosticLevel, NoneLevel,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i])
	}
	assert.Equal(t, NoneLevel, _maxLevel)
}

func TestLevel_String(t *testing.T) {
	testCases := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{ErrorLevel, "ERROR"},
		{CriticalLevel, "CRITICAL"},
		{FatalLevel, "FATAL"},
		{DiagnosticLevel, "DIAGNOSTIC"},
		{NoneLevel, "NONE"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.level.String())
	}
	assert.Contains(t, Level(100).String(), "unknown level")
}

func TestLevel_Valid(t *testing.T) {
	assert.True(t, TraceLevel.valid())
	assert.True(t, NoneLevel.valid())
	assert.False(t, Level(0).valid())
	assert.False(t, Level(100).valid())
}

func TestLevel_DebugOnly(t *testing.T) {
	assert.True(t, DebugLevel.debugOnly())
	assert.True(t, DiagnosticLevel.debugOnly())
	assert.False(t, InfoLevel.debugOnly())
	assert.False(t, TraceLevel.debugOnly())
}
