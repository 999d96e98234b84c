package internal

import (
	"os/exec"
	"runtime"
)

// OpenArtifact launches the platform default viewer for the given file.
// The viewer process is started and not waited on.
func OpenArtifact(path string) error {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
	case "darwin":
		return exec.Command("open", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
