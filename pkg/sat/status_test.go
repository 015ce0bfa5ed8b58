package sat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, Satisfiable, StatusFromCode(10))
	assert.Equal(t, Unsatisfiable, StatusFromCode(20))
	assert.Equal(t, Indeterminate, StatusFromCode(0))
	assert.Equal(t, Indeterminate, StatusFromCode(30))

	assert.Equal(t, 10, Satisfiable.Code())
	assert.Equal(t, 20, Unsatisfiable.Code())
	assert.Equal(t, 0, Indeterminate.Code())
	assert.Equal(t, 0, Unset.Code())
}

func TestStatusConcluded(t *testing.T) {
	assert.True(t, Satisfiable.Concluded())
	assert.True(t, Unsatisfiable.Concluded())
	assert.False(t, Indeterminate.Concluded())
	assert.False(t, Unset.Concluded())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "unset", Unset.String())
	assert.Equal(t, "indeterminate", Indeterminate.String())
	assert.Equal(t, "true", True.String())
	assert.Equal(t, "false", False.String())
	assert.Equal(t, "free", Free.String())
}

func TestLit(t *testing.T) {
	assert.Equal(t, int32(3), Lit(-3).Var())
	assert.Equal(t, int32(3), Lit(3).Var())
	assert.Equal(t, Lit(-3), Lit(3).Not())
	assert.True(t, Lit(-1).Valid())
	assert.True(t, Lit(math.MaxInt32).Valid())
	assert.False(t, Lit(0).Valid())
	assert.False(t, Lit(math.MinInt32).Valid())
}
