package metadata

import (
	"runtime"
	"strings"
)

// HostArch maps the running platform onto an Arch Linux architecture name.
// The boolean reports whether an Arch Linux port exists for the platform.
func HostArch() (string, bool) {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64", true
	case "386":
		// Official support was dropped in 2017, an unofficial port remains.
		return "i686", true
	case "arm":
		return "arm", true
	case "arm64":
		return "aarch64", true
	default:
		return runtime.GOARCH, false
	}
}

// NormalizeArch rewrites a manually entered architecture list so that a
// single-quoted template slot expands into a bash array: "x86_64 i686"
// becomes "x86_64' 'i686".
func NormalizeArch(input string) string {
	return strings.Join(strings.Fields(input), "' '")
}
