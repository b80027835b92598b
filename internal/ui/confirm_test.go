package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptInput points confirmIn at a scripted line for one test.
func scriptInput(t *testing.T, line string) {
	t.Helper()
	orig := confirmIn
	confirmIn = strings.NewReader(line)
	t.Cleanup(func() { confirmIn = orig })
}

func TestConfirmAcceptsYes(t *testing.T) {
	scriptInput(t, "y\n")
	assert.True(t, Confirm("Cast this vote?"))

	scriptInput(t, "YES\n")
	assert.True(t, Confirm("Cast this vote?"))
}

func TestConfirmDeclinesByDefault(t *testing.T) {
	scriptInput(t, "\n")
	assert.False(t, Confirm("Cast this vote?"))

	scriptInput(t, "n\n")
	assert.False(t, Confirm("Cast this vote?"))
}

// A closed stdin declines rather than hanging or consenting.
func TestConfirmDeclinesOnEOF(t *testing.T) {
	scriptInput(t, "")
	assert.False(t, Confirm("Cast this vote?"))
}

func TestConfirmSpend(t *testing.T) {
	scriptInput(t, "y\n")
	assert.True(t, ConfirmSpend("Submit this track", "0.010"))

	scriptInput(t, "nope\n")
	assert.False(t, ConfirmSpend("Submit this track", "0.010"))
}

func TestConfirmDanger(t *testing.T) {
	scriptInput(t, "yes\n")
	assert.True(t, ConfirmDanger("Remove wallet \"artist\" and its key?"))

	scriptInput(t, "\n")
	assert.False(t, ConfirmDanger("Remove wallet \"artist\" and its key?"))
}
