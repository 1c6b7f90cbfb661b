package exportstest_test

import (
	"testing"

	"github.com/pnpgo/resolver/internal/nodeexports/exportstest"
	"gotest.tools/v3/assert"
)

func TestResolverMock_RecordsCalls(t *testing.T) {
	t.Parallel()

	mock := &exportstest.ResolverMock{
		ResolveFunc: func(exportsField any, request string, conditions map[string]bool) (string, bool) {
			return "stubbed.js", true
		},
	}

	result, ok := mock.Resolve(map[string]any{}, "./sub", map[string]bool{"default": true})
	assert.Assert(t, ok)
	assert.Equal(t, result, "stubbed.js")

	calls := mock.ResolveCalls()
	assert.Equal(t, len(calls), 1)
	assert.Equal(t, calls[0].Request, "./sub")
}
