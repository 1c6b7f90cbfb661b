package pnp

import (
	"log/slog"

	"github.com/pnpgo/resolver/internal/tspath"
)

// Options carries the resolver's caller-configurable knobs. This is a
// library, not a service: knobs are plain struct fields set by constructor
// args, not a config file or environment variables.
type Options struct {
	// Logger receives slog.LevelDebug breadcrumbs for manifest load/parse,
	// index cache hits/misses, and portal pass-through. Nil means discard.
	Logger *slog.Logger

	// Conditions is the active exports condition set; DefaultConditions
	// if nil. Loader does not read it, and Manifest.Resolve takes its
	// condition set as an argument instead.
	Conditions map[string]bool

	// ManifestNames lists manifest filenames; tspath.DefaultManifestNames if
	// empty. Loader does not read it, and FindClosestManifestPath takes its
	// names as an argument instead.
	ManifestNames []string

	// CaseInsensitive makes the manifest index (C3) fold paths before
	// comparing them, for resolving against a case-insensitive filesystem
	// (e.g. default macOS/Windows). osvfs's own UseCaseSensitiveFileNames
	// detection is a reasonable source for this value, but it is not
	// consulted automatically — a caller that knows better always sets
	// this explicitly. The zero value (false) is case-sensitive, matching
	// the common case (Linux, and any filesystem mounted case-sensitive).
	CaseInsensitive bool
}

// DefaultOptions returns the Options a caller gets by not setting any.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.New(slog.DiscardHandler),
		Conditions:    DefaultConditions,
		ManifestNames: tspath.DefaultManifestNames,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o Options) conditions() map[string]bool {
	if o.Conditions == nil {
		return DefaultConditions
	}
	return o.Conditions
}

func (o Options) manifestNames() []string {
	if len(o.ManifestNames) == 0 {
		return tspath.DefaultManifestNames
	}
	return o.ManifestNames
}
