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

import "compress/gzip"

// CompressLevel 每日轮转归档文件的gzip压缩级别
type CompressLevel int

const (
	NoCompression      CompressLevel = gzip.NoCompression
	BestSpeed          CompressLevel = gzip.BestSpeed
	BestCompression    CompressLevel = gzip.BestCompression
	DefaultCompression CompressLevel = gzip.DefaultCompression
	HuffmanOnly        CompressLevel = gzip.HuffmanOnly
)

// enabled 是否需要压缩归档文件
func (l CompressLevel) enabled() bool {
	switch l {
	case BestSpeed, BestCompression, DefaultCompression, HuffmanOnly:
		return true
	default:
		return false
	}
}

func (l CompressLevel) Int() int {
	return int(l)
}
