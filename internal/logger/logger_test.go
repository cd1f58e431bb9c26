package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, InfoLogger)
	assert.NotNil(t, WarnLogger)
	assert.NotNil(t, ErrorLogger)
	assert.NotNil(t, DebugLogger)
}

func captureInfo() *bytes.Buffer {
	var buf bytes.Buffer
	InfoLogger = log.New(&buf, "INFO: ", log.Ldate|log.Ltime)
	return &buf
}

func TestInfo(t *testing.T) {
	buf := captureInfo()

	Info("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestInfoKeyvals(t *testing.T) {
	buf := captureInfo()

	Info("request handled", "method", "GET", "status", 200)

	output := buf.String()
	assert.Contains(t, output, "request handled")
	assert.Contains(t, output, "method=GET")
	assert.Contains(t, output, "status=200")
}

func TestInfof(t *testing.T) {
	buf := captureInfo()

	Infof("test %s", "message")

	assert.Contains(t, buf.String(), "test message")
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	WarnLogger = log.New(&buf, "WARN: ", log.Ldate|log.Ltime)

	Warn("something odd", "member_id", 7)

	output := buf.String()
	assert.Contains(t, output, "something odd")
	assert.Contains(t, output, "member_id=7")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	ErrorLogger = log.New(&buf, "ERROR: ", log.Ldate|log.Ltime)

	Error("test error")

	assert.Contains(t, buf.String(), "test error")
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	ErrorLogger = log.New(&buf, "ERROR: ", log.Ldate|log.Ltime)

	Errorf("test %s", "error")

	assert.Contains(t, buf.String(), "test error")
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	DebugLogger = log.New(&buf, "DEBUG: ", log.Ldate|log.Ltime)

	Debugf("test %s", "debug")

	assert.Contains(t, buf.String(), "test debug")
}

func TestFormatKeyvals(t *testing.T) {
	assert.Equal(t, "", formatKeyvals(nil))
	assert.Equal(t, " a=1", formatKeyvals([]interface{}{"a", 1}))
	// A dangling key is still printed rather than dropped.
	assert.Equal(t, " a=1 b", formatKeyvals([]interface{}{"a", 1, "b"}))
}
