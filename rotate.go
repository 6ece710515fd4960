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
	"compress/gzip"
	"io"
	"os"
	"time"

	"github.com/robfig/cron/v3"
)

// archiveLayout 归档文件名中的日期格式
const archiveLayout = "20060102"

// startRotateCron 启动每日轮转的定时任务，每天凌晨0点（秒级精度）触发，
// 时区在启动时固定。任务只启动一次，关闭轮转后任务空转
func (l *Logger) startRotateCron(tz TimeZone) {
	l.cronOnce.Do(func() {
		cr := cron.New(
			cron.WithLocation(tz.location()),
			cron.WithSeconds())
		if _, err := cr.AddFunc("0 0 0 * * *", l.rotateDaily); err != nil {
			internalErrf("logf: failed to add rotate cron job, err: %v\n", err)
			return
		}

		cr.Start()
		l.cr = cr
	})
}

// rotateDaily 把当前日志文件的全部内容归档到<path>.<yyyymmdd>（按需gzip
// 压缩为.gz），随后清空当前文件。归档日期取刚结束的那一天。全程持句柄锁，
// 与两个文件循环和ResultLog互斥
func (l *Logger) rotateDaily() {
	cfg := l.snapshot()
	if !cfg.dailyRotate || cfg.filePath == "" {
		return
	}

	l.fmu.Lock()
	defer l.fmu.Unlock()

	if l.fh == nil {
		return
	}

	if _, err := l.fh.Seek(0, io.SeekStart); err != nil {
		internalErrf("logf: rotate seek failed, err: %v\n", err)
		return
	}
	data, err := io.ReadAll(l.fh)
	if err != nil {
		internalErrf("logf: rotate read failed, err: %v\n", err)
		return
	}
	if len(data) == 0 {
		return
	}

	day := time.Now().In(cfg.timezone.location()).AddDate(0, 0, -1)
	archive := cfg.filePath + "." + day.Format(archiveLayout)
	if err = writeArchive(archive, data, cfg.compressLevel); err != nil {
		internalErrf("logf: rotate archive failed, file: %s, err: %v\n", archive, err)
		return
	}

	if err = l.fh.Truncate(0); err != nil {
		internalErrf("logf: rotate truncate failed, err: %v\n", err)
		return
	}
	if _, err = l.fh.Seek(0, io.SeekStart); err != nil {
		internalErrf("logf: rotate seek failed, err: %v\n", err)
	}
}

// writeArchive 落盘归档文件，压缩开启时追加.gz后缀
func writeArchive(path string, data []byte, level CompressLevel) error {
	if !level.enabled() {
		return os.WriteFile(path, data, 0o644)
	}

	fh, err := os.OpenFile(path+".gz", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = fh.Close() }()

	gw, err := gzip.NewWriterLevel(fh, level.Int())
	if err != nil {
		return err
	}
	if _, err = gw.Write(data); err != nil {
		_ = gw.Close()
		return err
	}
	return gw.Close()
}
