package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/adapters/logger"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("resolved", "packages", 3)
	lg.Warn("slow fetch")
	lg.Debug("not shown")

	assert.Equal(t, "resolved packages=3\n! slow fetch\n", buf.String())

	buf.Reset()
	lg.SetVerbose(true)
	lg.Debug("now shown")
	assert.Equal(t, "now shown\n", buf.String())
}

func TestLogger_Error_Pretty(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(
		zerr.With(zerr.Wrap(errors.New("exit status 128"), "git fetch failed"), "url", "file:///tmp/x"),
		"failed to update repository",
	)
	lg.Error(err)

	want := "✗ Error: failed to update repository\n" +
		"\n" +
		"  Caused by:\n" +
		"    → git fetch failed\n" +
		"      url: file:///tmp/x\n" +
		"    → exit status 128\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_Error_MultilineMessage(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(&domain.SourceConflictError{
		Name:   "culprit",
		First:  domain.GitSource("file:///tmp/culprit", domain.DefaultBranch()),
		Second: domain.GitSource("file:///tmp/culprit", domain.Branch("branchy")),
	})

	want := "✗ Error: found dependencies on the same package `culprit` coming from incompatible sources:\n" +
		"       source 1: git+file:///tmp/culprit\n" +
		"       source 2: git+file:///tmp/culprit?branch=branchy\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello", "run", "abc")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "abc", record["run"])

	buf.Reset()
	lg.Error(zerr.New("boom"))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "operation failed", record["msg"])
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	lg := logger.New()
	lg.SetOutput(nil)
	lg.SetOutput(os.Stderr)
}
