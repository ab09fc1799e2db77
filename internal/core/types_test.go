// AngelaMos | 2026
// types_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayValue(t *testing.T) {
	t.Parallel()

	t.Run("nil serializes as empty array", func(t *testing.T) {
		var a StringArray
		v, err := a.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("values serialize as json", func(t *testing.T) {
		a := StringArray{"go", "postgres"}
		v, err := a.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `["go","postgres"]`, v.(string))
	})
}

func TestStringArrayScan(t *testing.T) {
	t.Parallel()

	t.Run("bytes", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan([]byte(`["a","b"]`)))
		assert.Equal(t, StringArray{"a", "b"}, a)
	})

	t.Run("string", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan(`["x"]`))
		assert.Equal(t, StringArray{"x"}, a)
	})

	t.Run("null column", func(t *testing.T) {
		a := StringArray{"stale"}
		require.NoError(t, a.Scan(nil))
		assert.Nil(t, a)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var a StringArray
		assert.Error(t, a.Scan(42))
	})

	t.Run("malformed json", func(t *testing.T) {
		var a StringArray
		assert.Error(t, a.Scan([]byte(`{oops`)))
	})
}
