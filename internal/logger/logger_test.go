package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	SetVerbose(false)
	Debug("hidden %s", "message")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("shown %s", "message")
	assert.Equal(t, "[DEBUG] shown message\n", buf.String())
}

func TestInfo_OnlyWhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Info("hidden")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Info("count=%d", 3)
	assert.Equal(t, "[INFO] count=3\n", buf.String())
}

func TestWarn_AlwaysPrints(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	SetVerbose(false)
	Warn("could not read %s", "sections/a.tex")
	assert.Equal(t, "[warn] could not read sections/a.tex\n", buf.String())
}

func TestIsVerbose(t *testing.T) {
	defer reset()

	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}
