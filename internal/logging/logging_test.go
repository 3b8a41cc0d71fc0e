package logging

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	out, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
	return &buf
}

func TestDebugf_writesPrefixedLineWhenEnabled(t *testing.T) {
	buf := captureLog(t)

	Debugf(true, "hashed %s in %s", "a.bin", "2ms")
	assert.Equal(t, "[thash] hashed a.bin in 2ms\n", buf.String())
}

func TestDebugf_silentWhenDisabled(t *testing.T) {
	buf := captureLog(t)

	Debugf(false, "hashed %s", "a.bin")
	assert.Empty(t, buf.String())
}
