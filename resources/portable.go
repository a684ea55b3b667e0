package resources

import (
	"os"
	"path/filepath"
)

// the directory used for resources when the portable marker file is present
const portablePath = "Touchstick_UserData"

// the marker file that makes the binary "portable". it must live in the same
// directory as the program binary
const portableMarker = "portable.txt"

func checkPortable() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	_, err = os.Stat(filepath.Join(filepath.Dir(exe), portableMarker))
	return err == nil
}
