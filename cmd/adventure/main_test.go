package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/magicruby/internal/game/command"
)

func TestPrintCommands(t *testing.T) {
	var buf bytes.Buffer
	printCommands(&buf, command.DefaultRegistry())
	out := buf.String()

	for _, header := range []string{"MOVEMENT:", "WORLD:", "PUZZLE:", "SYSTEM:"} {
		assert.Contains(t, out, header+"\n")
	}
	assert.Less(t, strings.Index(out, "MOVEMENT:"), strings.Index(out, "SYSTEM:"))
	assert.Contains(t, out, "GET, TAK")
	assert.Contains(t, out, "Pick something up")
	assert.Equal(t, len(command.BuiltinCommands())+4, strings.Count(out, "\n"))
}
