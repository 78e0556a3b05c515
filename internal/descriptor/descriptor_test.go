package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_ClassColIndex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, Input{}.ClassColIndex(), "nil maps to the -1 tuple sentinel")

	zero := 0
	assert.Equal(t, 0, Input{ClassCol: &zero}.ClassColIndex(), "an explicit 0 is not the sentinel")

	five := 5
	assert.Equal(t, 5, Input{ClassCol: &five}.ClassColIndex())
}
