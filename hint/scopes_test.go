package hint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionScopes_EnterAndExit(t *testing.T) {
	s := NewExecutionScopes()
	s.Assign("x", 1)
	s.EnterScope(map[string]any{"y": 2})
	assert.Equal(t, 2, s.Depth())

	_, err := s.Get("x")
	assert.ErrorIs(t, err, ErrVariableNotInScope, "outer variables are not visible")
	y, err := s.Get("y")
	require.NoError(t, err)
	assert.Equal(t, 2, y)

	require.NoError(t, s.ExitScope())
	x, err := s.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1, x)
}

func TestExecutionScopes_MainScopeCannotBeExited(t *testing.T) {
	s := NewExecutionScopes()
	assert.ErrorIs(t, s.ExitScope(), ErrCannotExitMainScope)
	assert.Equal(t, 1, s.Depth())
}

func TestExecutionScopes_EnterScopeCopiesVariables(t *testing.T) {
	vars := map[string]any{"a": 1}
	s := NewExecutionScopes()
	s.EnterScope(vars)
	s.Assign("a", 2)
	assert.Equal(t, 1, vars["a"])
}

func TestExecutionScopes_DeleteAndVariables(t *testing.T) {
	s := NewExecutionScopes()
	s.Assign("a", 1)
	s.Assign("b", 2)
	s.Delete("a")
	assert.Equal(t, map[string]any{"b": 2}, s.Variables())
}

func TestHint_KindOf(t *testing.T) {
	assert.Equal(t, "cheatcode", KindOf(&Cheatcode{}))
	assert.Equal(t, "core", KindOf(&Core{}))
	assert.Equal(t, "alloc_segment", KindOf(&AllocSegment{}))
	assert.Equal(t, "syscall", KindOf(&Syscall{}))
	assert.Equal(t, "string", KindOf("opaque"))
}
