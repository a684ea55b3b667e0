//go:build !release
// +build !release

package resources

const configDir = ".touchstick"

func resourcePath() (string, error) {
	return configDir, nil
}
