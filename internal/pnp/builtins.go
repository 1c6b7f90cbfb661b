package pnp

import "strings"

// nodeBuiltinPrefix marks an explicit builtin request regardless of
// whether the bare name also happens to be installed as a package (open
// question resolved in DESIGN.md: "node:"-prefixed specifiers are always
// builtins, full stop).
const nodeBuiltinPrefix = "node:"

// builtinModules is the set of Node.js builtin module names reachable
// without the "node:" prefix. Kept as a flat set rather than a generated
// table since the list changes rarely enough that hand-maintenance is
// cheaper than vendoring Node's own registry.
var builtinModules = map[string]bool{
	"assert": true, "assert/strict": true,
	"async_hooks": true,
	"buffer":      true,
	"child_process": true,
	"cluster":       true,
	"console":       true,
	"constants":     true,
	"crypto":        true,
	"dgram":         true,
	"diagnostics_channel": true,
	"dns":                 true,
	"dns/promises":        true,
	"domain":              true,
	"events":              true,
	"fs":                  true,
	"fs/promises":         true,
	"http":                true,
	"http2":                true,
	"https":                true,
	"inspector":            true,
	"inspector/promises":   true,
	"module":               true,
	"net":                  true,
	"os":                   true,
	"path":                 true,
	"path/posix":           true,
	"path/win32":           true,
	"perf_hooks":           true,
	"process":              true,
	"punycode":             true,
	"querystring":          true,
	"readline":             true,
	"readline/promises":    true,
	"repl":                 true,
	"stream":               true,
	"stream/consumers":     true,
	"stream/promises":      true,
	"stream/web":           true,
	"string_decoder":       true,
	"sys":                  true,
	"timers":               true,
	"timers/promises":      true,
	"tls":                  true,
	"trace_events":         true,
	"tty":                  true,
	"url":                  true,
	"util":                 true,
	"util/types":           true,
	"v8":                   true,
	"vm":                   true,
	"wasi":                 true,
	"worker_threads":       true,
	"zlib":                 true,
}

// IsBuiltin reports whether specifier names a Node.js builtin module,
// either via the "node:" prefix (always authoritative) or, for specifiers
// without it, membership in builtinModules.
func IsBuiltin(specifier string) bool {
	if strings.HasPrefix(specifier, nodeBuiltinPrefix) {
		return true
	}
	return builtinModules[specifier]
}

// TrimBuiltinPrefix strips a leading "node:" if present, leaving the bare
// module name; used once a specifier has already been classified as a
// builtin, so callers that only care about the canonical name don't need
// to special-case the prefix.
func TrimBuiltinPrefix(specifier string) string {
	return strings.TrimPrefix(specifier, nodeBuiltinPrefix)
}
