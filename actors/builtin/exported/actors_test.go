package exported_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesting-project/vesting-actors/actors/builtin"
	"github.com/vesting-project/vesting-actors/actors/builtin/exported"
)

func TestBuiltinActors(t *testing.T) {
	actors := exported.BuiltinActors()
	require.NotEmpty(t, actors)

	seen := map[string]bool{}
	for _, a := range actors {
		assert.True(t, a.Code().Defined(), "actor code cid undefined")
		assert.False(t, seen[a.Code().String()], "duplicate actor code %v", a.Code())
		seen[a.Code().String()] = true

		// Method number 1 is always the constructor.
		exports := a.Exports()
		require.Greater(t, len(exports), int(builtin.MethodConstructor))
		assert.NotNil(t, exports[builtin.MethodConstructor])
	}

	assert.True(t, seen[builtin.VestingActorCodeID.String()])
}
