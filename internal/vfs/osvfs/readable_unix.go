//go:build !windows

package osvfs

import "golang.org/x/sys/unix"

// readable reports whether path exists and is actually readable by this
// process, distinct from merely existing — a file can stat successfully but
// be unreadable (permission bits, ACLs), which matters once C6 reports
// QualifiedPathResolutionFailed with the probed candidate list: a candidate
// that exists-but-is-unreadable should not silently "win" a probe.
func readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
