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

package errorx

import "errors"

var (
	ErrInvalidLevel = errors.New("invalid log level")
	ErrInvalidStyle = errors.New("invalid style")
	ErrNoStyleEntry = errors.New("level has no style entry")
)

var (
	ErrFileNotConfigured = errors.New("log file is not configured")
	ErrDirCreate         = errors.New("failed to create log directory")
	ErrFileOpen          = errors.New("failed to open log file")
	ErrFileWrite         = errors.New("failed to write log file")
	ErrTerminalWrite     = errors.New("failed to write terminal stream")
)
