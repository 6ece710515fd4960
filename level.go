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

import "fmt"

type Level uint8

const (
	// TraceLevel 最低级别，用于追踪程序执行路径的细粒度日志
	TraceLevel Level = iota + 1
	// DebugLevel 用于开发环境调试的日志级别，仅在debug构建中生效，
	// release构建（构建标签logf_release）下调用为空操作
	DebugLevel
	// InfoLevel 默认的日志级别
	InfoLevel
	// WarningLevel 出现了危险的情况需要打印日志，存在危险，但不影响系统的正常运行
	WarningLevel
	// ErrorLevel 比WarningLevel更严重，业务出现了明显的错误，系统仍可正常运行
	ErrorLevel
	// CriticalLevel 比ErrorLevel严重，出现的错误已经影响到了系统的正常运行
	CriticalLevel
	// FatalLevel 最严重的业务级别，记录后调用方通常会主动终止进程
	FatalLevel
	// DiagnosticLevel 诊断级别，仅在debug构建中生效，默认加入旁路集合，
	// 不受最低输出级别和全局忽略集合的过滤限制
	DiagnosticLevel
	// NoneLevel 哨兵级别，拥有最大的序数，作为最低输出级别时抑制所有日志
	NoneLevel

	_minLevel = TraceLevel
	_maxLevel = NoneLevel
)

// String 返回日志级别大写格式的固定标签，用于格式模板中{level}占位符的替换
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	case FatalLevel:
		return "FATAL"
	case DiagnosticLevel:
		return "DIAGNOSTIC"
	case NoneLevel:
		return "NONE"
	default:
		return fmt.Sprintf("unknown level(%d)", uint8(l))
	}
}

// valid 校验是否是合法的日志级别
func (l Level) valid() bool {
	return l >= _minLevel && l <= _maxLevel
}

// debugOnly 校验是否是仅debug构建生效的日志级别
func (l Level) debugOnly() bool {
	return l == DebugLevel || l == DiagnosticLevel
}
