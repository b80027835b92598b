package ui

import (
	"os/exec"
	"runtime"
)

// OpenBrowser opens url in the OS default browser. Failures are silent; the
// views always print the URL alongside so the user can open it by hand.
func OpenBrowser(url string) {
	var name string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name = "cmd"
	default:
		name = "xdg-open"
	}
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command(name, "/c", "start", url)
	} else {
		cmd = exec.Command(name, url)
	}
	_ = cmd.Start()
}
