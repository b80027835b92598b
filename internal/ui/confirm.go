package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// confirmIn is swapped for a scripted reader in tests.
var confirmIn io.Reader = os.Stdin

// ask prints the styled prompt and reads one line. Only an explicit
// "y"/"yes" counts as consent; everything else, including EOF, declines.
func ask(styled string) bool {
	fmt.Printf("%s %s ", styled, StyleMeta.Render("[y/N]"))
	line, _ := bufio.NewReader(confirmIn).ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}

// Confirm asks a yes/no question before an on-chain action.
func Confirm(prompt string) bool {
	return ask(StyleWarning.Render(prompt))
}

// ConfirmSpend asks before an action that moves ETH, showing the amount in
// the value style so the cost stands out from the prompt text.
func ConfirmSpend(action, amountETH string) bool {
	return ask(StyleWarning.Render(action+" for") + " " + Val(amountETH+" ETH") + StyleWarning.Render("?"))
}

// ConfirmDanger asks before a destructive action such as removing a wallet
// and its key.
func ConfirmDanger(prompt string) bool {
	return ask(StyleError.Render("⚠ " + prompt))
}
