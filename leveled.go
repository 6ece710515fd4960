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

// 按级别的便捷入口，自动捕获调用点。R前缀的变体走同步的ResultLog路径，
// 返回写入过程中的错误；其余变体即发即弃。

const leveledSkip = 2

func (l *Logger) Trace(v ...any) {
	l.Log(TraceLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) Tracef(format string, v ...any) {
	l.Log(TraceLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) Debug(v ...any) {
	l.Log(DebugLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) Debugf(format string, v ...any) {
	l.Log(DebugLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) Info(v ...any) {
	l.Log(InfoLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) Infof(format string, v ...any) {
	l.Log(InfoLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(v ...any) {
	l.Log(WarningLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) Warnf(format string, v ...any) {
	l.Log(WarningLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) Error(v ...any) {
	l.Log(ErrorLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) Errorf(format string, v ...any) {
	l.Log(ErrorLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) Critical(v ...any) {
	l.Log(CriticalLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) Criticalf(format string, v ...any) {
	l.Log(CriticalLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) Fatal(v ...any) {
	l.Log(FatalLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) Fatalf(format string, v ...any) {
	l.Log(FatalLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) Diag(v ...any) {
	l.Log(DiagnosticLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) Diagf(format string, v ...any) {
	l.Log(DiagnosticLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) RTrace(v ...any) error {
	return l.ResultLog(TraceLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) RTracef(format string, v ...any) error {
	return l.ResultLog(TraceLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) RDebug(v ...any) error {
	return l.ResultLog(DebugLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) RDebugf(format string, v ...any) error {
	return l.ResultLog(DebugLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) RInfo(v ...any) error {
	return l.ResultLog(InfoLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) RInfof(format string, v ...any) error {
	return l.ResultLog(InfoLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) RWarn(v ...any) error {
	return l.ResultLog(WarningLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) RWarnf(format string, v ...any) error {
	return l.ResultLog(WarningLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) RError(v ...any) error {
	return l.ResultLog(ErrorLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) RErrorf(format string, v ...any) error {
	return l.ResultLog(ErrorLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) RCritical(v ...any) error {
	return l.ResultLog(CriticalLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) RCriticalf(format string, v ...any) error {
	return l.ResultLog(CriticalLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) RFatal(v ...any) error {
	return l.ResultLog(FatalLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) RFatalf(format string, v ...any) error {
	return l.ResultLog(FatalLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

func (l *Logger) RDiag(v ...any) error {
	return l.ResultLog(DiagnosticLevel, callSite(leveledSkip), fmt.Sprint(v...))
}

func (l *Logger) RDiagf(format string, v ...any) error {
	return l.ResultLog(DiagnosticLevel, callSite(leveledSkip), fmt.Sprintf(format, v...))
}

// Structured 结构化日志的便捷入口
func (l *Logger) Structured(level Level, message string, fields Fields) {
	l.StructuredLog(level, callSite(leveledSkip), message, fields)
}
