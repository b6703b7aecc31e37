/*
Copyright (c) YugabyteDB, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dataco-labs/data-anonymiser/src/config"
)

type MyFormatter struct{}

var levelList = []string{
	"PANIC",
	"FATAL",
	"ERROR",
	"WARN",
	"INFO",
	"DEBUG",
	"TRACE",
}

func (mf *MyFormatter) Format(entry *log.Entry) ([]byte, error) {
	level := levelList[int(entry.Level)]
	caller := "???:0"
	if entry.HasCaller() {
		caller = fmt.Sprintf("%s:%d", filepath.Base(entry.Caller.File), entry.Caller.Line)
	}
	// Example log line:
	// 2022-03-23 12:16:42 INFO anonymiser.go:87 dropping 10 PII columns from "DataCoSupplyChainDataset.csv"
	msg := fmt.Sprintf("%s %s %s %s\n",
		entry.Time.Format("2006-01-02 15:04:05"), level, caller, strings.TrimRight(entry.Message, "\n"))
	return []byte(msg), nil
}

// InitLogging sends log lines to ${logDir}/logs/data-anonymiser.log.
// Without a log dir nothing is logged, the console summary is unaffected.
func InitLogging(logDir string) {
	log.SetLevel(config.LogrusLevel())
	if logDir == "" {
		log.SetOutput(io.Discard)
		return
	}
	logFileName := filepath.Join(logDir, "logs", LOG_FILE_NAME)

	// logRotator handles scenario where "logs" folder, or the log file does not exist.
	logRotator := &lumberjack.Logger{
		Filename:   logFileName,
		MaxSize:    200, // 200 MB log size before rotation
		MaxBackups: 10,  // Allow upto 10 logs at once before deleting oldest logs.
	}
	log.SetOutput(logRotator)

	log.SetReportCaller(true)
	log.SetFormatter(&MyFormatter{})
	log.Info("Logging initialised.")
	log.Infof("Args: %v", os.Args)
	log.Infof("\n%s", getVersionInfo())
}
