//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into a JSON map so tests can send payloads the
// typed struct cannot express (missing or wrongly typed fields).
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key on the payload; a nil value removes it.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
