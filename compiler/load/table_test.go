package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)
	assert.Empty(t, tbl.Path)
	assert.Len(t, tbl.Prefixes, 9)
	assert.NotEmpty(t, tbl.Laws)

	capacitance, ok := tbl.Quantity("capacitance")
	require.True(t, ok)
	assert.Equal(t, "F", capacitance.Field)
	assert.Equal(t, "farad", capacitance.Unit)
	assert.Equal(t, "electromagnetic", capacitance.Category)
	assert.True(t, capacitance.InGraph())

	torque, ok := tbl.Quantity("torque")
	require.True(t, ok)
	assert.False(t, torque.InGraph())

	temperature, ok := tbl.Quantity("temperature")
	require.True(t, ok)
	require.Len(t, temperature.Units, 2)
	assert.Equal(t, 273.15, temperature.Units[0].Offset)
	assert.Equal(t, 459.67, temperature.Units[1].Offset)

	milli, ok := tbl.Prefix("milli")
	require.True(t, ok)
	assert.Equal(t, 1e-3, milli.Factor)
	assert.Equal(t, "m", milli.Symbol)
}

func TestLoad(t *testing.T) {
	t.Run("empty path loads default", func(t *testing.T) {
		tbl, err := Load("")
		require.NoError(t, err)
		_, ok := tbl.Quantity("voltage")
		assert.True(t, ok)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "table.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
quantities:
  - {name: time, category: base, dimension: s, field: S, unit: second, symbol: s}
`), 0o644))
		tbl, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, tbl.Path)
		require.Len(t, tbl.Quantities, 1)
		assert.Equal(t, "time", tbl.Quantities[0].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "laws: []",
			want:  "no quantities",
		},
		{
			name:  "malformed yaml",
			input: "quantities: [",
			want:  "decode table",
		},
		{
			name: "duplicate",
			input: `
quantities:
  - {name: time, category: base, dimension: s, field: S, unit: second, symbol: s}
  - {name: time, category: base, dimension: s, field: S, unit: second, symbol: s}
`,
			want: "defined twice",
		},
		{
			name: "missing dimension",
			input: `
quantities:
  - {name: time, category: base, field: S, unit: second, symbol: s}
`,
			want: "missing dimension",
		},
		{
			name: "unknown prefix",
			input: `
quantities:
  - {name: time, category: base, dimension: s, field: S, unit: second, symbol: s, prefixes: [milli]}
`,
			want: `unknown prefix "milli"`,
		},
		{
			name: "unknown reciprocal",
			input: `
quantities:
  - {name: time, category: base, dimension: s, field: S, unit: second, symbol: s, reciprocal: frequency}
`,
			want: `unknown reciprocal "frequency"`,
		},
		{
			name: "unknown law operand",
			input: `
quantities:
  - {name: time, category: base, dimension: s, field: S, unit: second, symbol: s}
laws:
  - time * time = area
`,
			want: `unknown quantity "area"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseLaw(t *testing.T) {
	t.Run("multiplication", func(t *testing.T) {
		l, err := ParseLaw("moment of inertia * angular acceleration = torque")
		require.NoError(t, err)
		assert.Equal(t, &Law{Left: "moment of inertia", Op: "*", Right: "angular acceleration", Result: "torque"}, l)
		assert.Equal(t, "moment of inertia * angular acceleration = torque", l.String())
	})

	t.Run("division", func(t *testing.T) {
		l, err := ParseLaw("energy/mass=absorbed dose")
		require.NoError(t, err)
		assert.Equal(t, "/", l.Op)
		assert.Equal(t, "energy", l.Left)
		assert.Equal(t, "mass", l.Right)
		assert.Equal(t, "absorbed dose", l.Result)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"energy", "energy = mass", "* mass = energy", "energy / mass = "} {
			_, err := ParseLaw(s)
			assert.Error(t, err, s)
		}
	})
}
