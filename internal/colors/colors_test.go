package colors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) record(level, msg string) {
	r.lines = append(r.lines, fmt.Sprintf("%s:%s", level, msg))
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.record("debug", msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.record("info", msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.record("warn", msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.record("error", msg) }

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer, *recordingLogger) {
	t.Helper()
	var out, errOut bytes.Buffer
	rec := &recordingLogger{}
	SetOutput(&out, &errOut)
	SetLogger(rec)
	t.Cleanup(func() {
		SetOutput(nil, nil)
		SetLogger(nil)
		SetDebug(false)
	})
	return &out, &errOut, rec
}

func TestErrorAndWarningGoToStderr(t *testing.T) {
	out, errOut, rec := capture(t)

	Error("something", "went wrong")
	Warning("careful")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "something went wrong")
	assert.Contains(t, errOut.String(), "Warning:")
	assert.Equal(t, []string{"error:something went wrong", "warn:careful"}, rec.lines)
}

func TestSuccessAndInfoGoToStdout(t *testing.T) {
	out, errOut, rec := capture(t)

	Success("imported")
	Info("4 cocktails")

	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), checkmark+" imported")
	assert.Contains(t, out.String(), "4 cocktails")
	assert.Len(t, rec.lines, 2)
}

func TestDebugRespectsFlag(t *testing.T) {
	_, errOut, rec := capture(t)

	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	Debug("shown")
	assert.Contains(t, errOut.String(), "Debug:")
	assert.Contains(t, errOut.String(), "shown")
	assert.Equal(t, []string{"debug:shown"}, rec.lines)
}
