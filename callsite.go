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
	"runtime"
	"strings"
)

const callSiteParts = 3

// callSite 捕获调用点信息并精简为"尾部路径:行号"形式，作为{module_path}
// 占位符的替换内容。核心只做原样替换，不解析该字符串
func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}

	sli := strings.Split(file, string(os.PathSeparator))
	if len(sli) > callSiteParts {
		sli = sli[len(sli)-callSiteParts:]
	}

	return fmt.Sprintf("%s:%d", strings.Join(sli, string(os.PathSeparator)), line)
}
