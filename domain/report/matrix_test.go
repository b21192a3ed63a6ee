package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportkit/internal/errors"
)

func TestMatrix_Dense(t *testing.T) {
	m := Matrix{{1, 2, 3}, {3, 4, 5}}

	rows, cols := m.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	dense, err := m.Dense()
	require.NoError(t, err)
	r, c := dense.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 4.0, dense.At(1, 1))
}

func TestMatrix_DenseShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"nil", nil},
		{"empty rows", Matrix{{}, {}}},
		{"ragged", Matrix{{1, 2, 3}, {4, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.m.Dense()
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.CodeShapeError))
		})
	}
}

func TestAsMatrix(t *testing.T) {
	decoded := []any{
		[]any{1.0, int64(2)},
		[]any{uint8(3), 4.5},
	}

	m, err := AsMatrix(decoded)
	require.NoError(t, err)
	assert.Equal(t, Matrix{{1, 2}, {3, 4.5}}, m)

	m, err = AsMatrix([][]float64{{1}})
	require.NoError(t, err)
	assert.Equal(t, Matrix{{1}}, m)
}

func TestAsMatrix_RejectsOtherShapes(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"flat", []float64{1, 2, 3}},
		{"flat any", []any{1.0, 2.0}},
		{"non numeric cell", []any{[]any{"a"}}},
		{"scalar", 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AsMatrix(tt.value)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.CodeShapeError))
		})
	}
}

func TestTargets(t *testing.T) {
	single := Single("ext_reward")
	assert.Equal(t, SingleTarget, single.Kind)
	assert.Equal(t, []string{"ext_reward"}, single.Names)

	group := Group([]string{"ext_reward", "int_reward"}, "time step", "rewards")
	assert.Equal(t, GroupTarget, group.Kind)
	assert.Equal(t, "time step", group.XLabel)
	assert.Equal(t, "rewards", group.YLabel)

	assert.Equal(t, []Target{Single("a"), Single("b")}, Singles("a", "b"))
	assert.Empty(t, Singles())
}
