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
	"strings"
	"time"
)

// 占位符的替换是纯字面量替换，不涉及正则，模板中每一处出现都会被替换，
// 未识别的占位符原样保留。{level}由Dispatch在分发到具体Sink时最后替换：
// 终端替换为带样式渲染的标签，文件替换为纯文本标签。

const (
	phTimestamp  = "{timestamp}"
	phModulePath = "{module_path}"
	phMessage    = "{message}"
	phLevel      = "{level}"
	phKey        = "{key}"
	phValue      = "{value}"
)

// formatBase 渲染除{level}外的所有基础占位符
func formatBase(template, modulePath, message, timestamp string) string {
	line := strings.ReplaceAll(template, phTimestamp, timestamp)
	line = strings.ReplaceAll(line, phModulePath, modulePath)
	return strings.ReplaceAll(line, phMessage, message)
}

// formatStructured 在基础替换后按pairTemplate逐个追加键值对片段。
// map的迭代顺序不确定，因此字段的输出顺序不作保证，需要确定顺序的
// 调用方应在边界处自行排序后拼入message
func formatStructured(template, modulePath, message, timestamp, pairTemplate string, fields map[string]string) string {
	line := formatBase(template, modulePath, message, timestamp)

	var builder strings.Builder
	builder.WriteString(line)
	for key, value := range fields {
		frag := strings.ReplaceAll(pairTemplate, phKey, key)
		frag = strings.ReplaceAll(frag, phValue, value)
		builder.WriteString(frag)
	}

	return builder.String()
}

// formatLevel Sink专属的{level}替换，终端传入渲染后的标签，文件传入纯标签
func formatLevel(line, label string) string {
	return strings.ReplaceAll(line, phLevel, label)
}

// timestamp 按快照中的时区与格式渲染当前时间
func (c *Config) timestamp(now time.Time) string {
	return now.In(c.timezone.location()).Format(c.timestampFormat)
}
