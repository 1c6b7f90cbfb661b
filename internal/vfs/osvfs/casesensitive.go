package osvfs

import "runtime"

// detectCaseSensitive returns the default case-sensitivity of the host
// filesystem by platform. This is a documented heuristic, not a filesystem
// probe: APFS/NTFS ship case-insensitive by default while the overwhelming
// majority of Linux filesystems are case-sensitive. A caller that knows
// better (e.g. a case-sensitive APFS volume) should override via
// pnp.Options rather than rely on this guess.
func detectCaseSensitive() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return false
	default:
		return true
	}
}
