//go:build unit

package utils

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestErrExitUsesHook(t *testing.T) {
	var buf bytes.Buffer
	stderr = &buf
	color.NoColor = true
	exitCode := -1
	SetExitHook(func(code int) { exitCode = code })
	defer func() {
		stderr = os.Stderr
		SetExitHook(nil)
	}()

	ErrExit("anonymise %q: %w", "in.csv", errors.New("boom"))

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "ERROR: anonymise \"in.csv\": boom\n", buf.String())
}

func TestQuoteAll(t *testing.T) {
	assert.Equal(t, `"Customer Email", "Order Id"`, QuoteAll([]string{"Customer Email", "Order Id"}))
	assert.Equal(t, "", QuoteAll(nil))
}
