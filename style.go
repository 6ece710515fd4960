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

import "github.com/charmbracelet/lipgloss"

type Style uint8

const (
	// Bold 加粗
	Bold Style = iota + 1
	// Italic 斜体
	Italic
	// Underline 下划线
	Underline
	// Strikethrough 删除线
	Strikethrough
	// Faint 暗淡显示
	Faint
	// Blink 闪烁
	Blink

	// FGBlack 前景色，使用ANSI标准的16色序号渲染
	FGBlack
	FGRed
	FGGreen
	FGYellow
	FGBlue
	FGMagenta
	FGCyan
	FGWhite

	// BGBlack 背景色
	BGBlack
	BGRed
	BGGreen
	BGYellow
	BGBlue
	BGMagenta
	BGCyan
	BGWhite

	_maxStyle = BGWhite
)

// valid 校验是否是合法的样式
func (s Style) valid() bool {
	return s >= Bold && s <= _maxStyle
}

// foreground ANSI前景色的颜色序号，非前景色样式返回false
func (s Style) foreground() (lipgloss.Color, bool) {
	if s < FGBlack || s > FGWhite {
		return "", false
	}
	return ansiColor(uint8(s - FGBlack)), true
}

// background ANSI背景色的颜色序号，非背景色样式返回false
func (s Style) background() (lipgloss.Color, bool) {
	if s < BGBlack || s > BGWhite {
		return "", false
	}
	return ansiColor(uint8(s - BGBlack)), true
}

func ansiColor(idx uint8) lipgloss.Color {
	const colors = "01234567"
	return lipgloss.Color(colors[idx : idx+1])
}

// render 把样式列表叠加渲染到文本上，终端Sink在替换{level}占位符时调用，
// 文件Sink始终使用未渲染的纯文本标签
func render(styles []Style, s string) string {
	if len(styles) == 0 {
		return s
	}

	st := lipgloss.NewStyle()
	for _, style := range styles {
		switch style {
		case Bold:
			st = st.Bold(true)
		case Italic:
			st = st.Italic(true)
		case Underline:
			st = st.Underline(true)
		case Strikethrough:
			st = st.Strikethrough(true)
		case Faint:
			st = st.Faint(true)
		case Blink:
			st = st.Blink(true)
		default:
			if c, ok := style.foreground(); ok {
				st = st.Foreground(c)
				continue
			}
			if c, ok := style.background(); ok {
				st = st.Background(c)
			}
		}
	}

	return st.Render(s)
}

// defaultStyles 默认的级别样式映射，所有级别都会预置样式条目，
// 保证AddStyle/RemoveStyle在默认配置下不会命中缺失级别
func defaultStyles() map[Level][]Style {
	return map[Level][]Style{
		TraceLevel:      {Faint},
		DebugLevel:      {FGCyan},
		InfoLevel:       {FGGreen},
		WarningLevel:    {FGYellow},
		ErrorLevel:      {FGRed},
		CriticalLevel:   {FGRed, Bold},
		FatalLevel:      {FGMagenta, Bold},
		DiagnosticLevel: {FGCyan, Bold},
		NoneLevel:       {},
	}
}
