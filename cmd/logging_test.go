//go:build unit

package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataco-labs/data-anonymiser/src/config"
)

func TestMyFormatter(t *testing.T) {
	entry := &log.Entry{
		Time:    time.Date(2022, 3, 23, 12, 16, 42, 0, time.UTC),
		Level:   log.WarnLevel,
		Message: "dropping 2 PII columns\n",
		Caller:  &runtime.Frame{File: "/src/anonymiser/anonymiser.go", Line: 87},
		Logger:  &log.Logger{ReportCaller: true},
	}
	out, err := (&MyFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2022-03-23 12:16:42 WARN anonymiser.go:87 dropping 2 PII columns\n", string(out))
}

func TestInitLoggingWritesUnderLogDir(t *testing.T) {
	defer func() {
		config.LogLevel = ""
		log.SetOutput(os.Stderr)
		log.SetReportCaller(false)
		log.SetFormatter(&log.TextFormatter{})
		log.SetLevel(log.InfoLevel)
	}()

	config.LogLevel = config.INFO
	dir := t.TempDir()
	InitLogging(dir)
	log.Info("hello from the test")

	data, err := os.ReadFile(filepath.Join(dir, "logs", LOG_FILE_NAME))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Logging initialised.")
	assert.Contains(t, string(data), "hello from the test")
}
