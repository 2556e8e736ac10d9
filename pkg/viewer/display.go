package viewer

import (
	"os"
	"runtime"
)

// hasDisplay reports whether a window can be opened at all. Only Unix
// desktops need a display server address in the environment.
func hasDisplay() bool {
	switch runtime.GOOS {
	case "darwin", "windows", "android", "ios", "js":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
