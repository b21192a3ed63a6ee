package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportkit/internal/errors"
)

func TestNew_DefaultKindIsSeries(t *testing.T) {
	rep, err := New("ext_reward", "time step", Default)
	require.NoError(t, err)

	assert.Equal(t, Series, rep.Kind)
	assert.Equal(t, "ext_reward", rep.Name)
	assert.Equal(t, "time step", rep.XLabel)
	assert.Zero(t, rep.Len())
}

func TestNew_RejectsUnknownKind(t *testing.T) {
	_, err := New("loss", "step", Kind("histogram"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeUnsupportedKind))
}

func TestAppend_Series(t *testing.T) {
	rep, err := New("ext_reward", "time step", Series)
	require.NoError(t, err)

	for _, v := range []any{0.1, 0.5, -0.2, 3, float32(0.25)} {
		require.NoError(t, rep.Append(v))
	}

	assert.Equal(t, []float64{0.1, 0.5, -0.2, 3, 0.25}, rep.Values)
	assert.Empty(t, rep.Counts)
}

func TestAppend_SeriesRejectsNonNumeric(t *testing.T) {
	rep, err := New("ext_reward", "time step", Series)
	require.NoError(t, err)

	err = rep.Append("high")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeInvalidInput))
	assert.Empty(t, rep.Values)
}

func TestAppend_CounterCountsOccurrences(t *testing.T) {
	rep, err := New("activation_count", "unit", Counter)
	require.NoError(t, err)

	for _, v := range []any{3, 3, 5, 3} {
		require.NoError(t, rep.Append(v))
	}

	assert.Equal(t, 3, rep.Count(3))
	assert.Equal(t, 1, rep.Count(5))
	assert.Equal(t, 0, rep.Count(7))
	assert.Equal(t, map[any]int{3.0: 3, 5.0: 1}, rep.CountMap())
	// buckets keep first-occurrence order
	assert.Equal(t, []Bucket{{Key: 3.0, Count: 3}, {Key: 5.0, Count: 1}}, rep.Counts)
}

func TestAppend_CounterNumericKeysCollapse(t *testing.T) {
	rep, err := New("activation_count", "unit", Counter)
	require.NoError(t, err)

	require.NoError(t, rep.Append(3))
	require.NoError(t, rep.Append(3.0))
	require.NoError(t, rep.Append(int64(3)))

	assert.Equal(t, 1, rep.Len())
	assert.Equal(t, 3, rep.Count(3))
}

func TestAppend_CounterKeyTypes(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"int", 4, false},
		{"float", 0.5, false},
		{"string", "left", false},
		{"bool", true, false},
		{"slice", []int{1}, true},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := New("actions", "action", Counter)
			require.NoError(t, err)

			err = rep.Append(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.CodeInvalidInput))
				assert.Zero(t, rep.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, rep.Count(tt.value))
		})
	}
}

func TestClear_KeepsIdentity(t *testing.T) {
	series, err := New("ext_reward", "time step", Series)
	require.NoError(t, err)
	require.NoError(t, series.Append(1.0))

	counter, err := New("activation_count", "unit", Counter)
	require.NoError(t, err)
	require.NoError(t, counter.Append(2))

	series.Clear()
	counter.Clear()

	assert.Equal(t, []float64{}, series.Values)
	assert.Equal(t, []Bucket{}, counter.Counts)
	assert.Equal(t, "ext_reward", series.Name)
	assert.Equal(t, Counter, counter.Kind)

	require.NoError(t, counter.Append(2))
	assert.Equal(t, 1, counter.Count(2))
}

func TestAppend_CounterAfterDecode(t *testing.T) {
	// a report rebuilt from a dump has buckets but no lookup index yet
	rep := &Report{Name: "activation_count", Kind: Counter, Counts: []Bucket{{Key: 1.0, Count: 2}}}

	require.NoError(t, rep.Append(1))
	require.NoError(t, rep.Append(4))

	assert.Equal(t, []Bucket{{Key: 1.0, Count: 3}, {Key: 4.0, Count: 1}}, rep.Counts)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "default", Default.String())
	assert.Equal(t, "series", Series.String())
	assert.Equal(t, "counter", Counter.String())
	assert.False(t, Default.Valid())
	assert.True(t, Counter.Valid())
}
