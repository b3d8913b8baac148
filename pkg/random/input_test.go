package random_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/go-rangerand/pkg/random"
)

func TestFromInput(t *testing.T) {
	tests := []struct {
		name string
		in   random.Input
		want random.Range
	}{
		{name: "text", in: random.Text(`{"min": 1, "max": 2}`), want: random.New(1, 2)},
		{name: "pair", in: random.Pair{9, 3}, want: random.New(3, 9)},
		{
			name: "structured",
			in:   random.Structured{Min: ptr(0), Max: ptr(1), Step: 0.5},
			want: random.New(0, 1, random.WithStep(0.5)),
		},
		{
			name: "structured pointer",
			in:   &random.Structured{Min: ptr(0), Max: ptr(1), Usfpp: true},
			want: random.New(0, 1, random.WithStrictPrecision(true)),
		},
		{name: "number ignores its value", in: random.Number(42), want: random.New(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := random.FromInput(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestFromInput_Errors(t *testing.T) {
	_, err := random.FromInput(nil)
	require.ErrorIs(t, err, random.ErrInvalidInput)

	_, err = random.FromInput((*random.Structured)(nil))
	require.ErrorIs(t, err, random.ErrInvalidInput)

	_, err = random.FromInput(random.Text("{"))
	require.ErrorIs(t, err, random.ErrParse)
}

func TestFromAny(t *testing.T) {
	var decoded any
	require.NoError(t, json.Unmarshal([]byte(`{"min": 10, "max": 0, "step": 2, "usfpp": true}`), &decoded))

	var decodedPair any
	require.NoError(t, json.Unmarshal([]byte(`[4, -4]`), &decodedPair))

	tests := []struct {
		name string
		in   any
		want random.Range
	}{
		{name: "string", in: `{"min": 1, "max": 6, "step": 1}`, want: random.New(1, 6, random.WithStep(1))},
		{name: "bytes", in: []byte(`{"min": 0, "max": 1}`), want: random.New(0, 1)},
		{name: "float slice", in: []float64{5, 1}, want: random.New(1, 5)},
		{name: "int array", in: [2]int{-2, 2}, want: random.New(-2, 2)},
		{name: "decoded json array", in: decodedPair, want: random.New(-4, 4)},
		{
			name: "decoded json object",
			in:   decoded,
			want: random.New(0, 10, random.WithStep(2), random.WithStrictPrecision(true)),
		},
		{name: "float map", in: map[string]float64{"min": 1, "max": 3}, want: random.New(1, 3)},
		{name: "bare float", in: 17.5, want: random.New(0, 1)},
		{name: "bare int", in: -3, want: random.New(0, 1)},
		{name: "json number", in: json.Number("8"), want: random.New(0, 1)},
		{name: "typed pair", in: random.Pair{1, 2}, want: random.New(1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := random.FromAny(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)

			tried, ok := random.TryFromAny(tt.in)
			assert.True(t, ok)
			assert.True(t, tt.want.Equal(tried))
		})
	}
}

func TestFromAny_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		wantErr error
	}{
		{name: "nil", in: nil, wantErr: random.ErrInvalidInput},
		{name: "bool", in: true, wantErr: random.ErrInvalidInput},
		{name: "three numbers", in: []float64{1, 2, 3}, wantErr: random.ErrInvalidInput},
		{name: "pair of strings", in: []string{"1", "2"}, wantErr: random.ErrInvalidInput},
		{name: "map without max", in: map[string]any{"min": 1}, wantErr: random.ErrInvalidInput},
		{name: "map with string min", in: map[string]any{"min": "0", "max": 1}, wantErr: random.ErrInvalidInput},
		{name: "bad text", in: "not json", wantErr: random.ErrParse},
		{name: "structured without bounds", in: random.Structured{}, wantErr: random.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := random.FromAny(tt.in)
			require.ErrorIs(t, err, tt.wantErr)

			_, ok := random.TryFromAny(tt.in)
			assert.False(t, ok)
		})
	}
}

func TestShapePredicates(t *testing.T) {
	assert.True(t, random.IsPair([]float64{1, 2}))
	assert.True(t, random.IsPair([]any{1, 2.5}))
	assert.True(t, random.IsPair(random.Pair{}))
	assert.False(t, random.IsPair([]any{1, "2"}))
	assert.False(t, random.IsPair([]int{1}))
	assert.False(t, random.IsPair("12"))
	assert.False(t, random.IsPair(nil))

	assert.True(t, random.IsStructured(map[string]any{"min": 0, "max": 1}))
	assert.True(t, random.IsStructured(random.Structured{Min: ptr(0), Max: ptr(1)}))
	assert.True(t, random.IsStructured(&random.Structured{Min: ptr(0), Max: ptr(1)}))
	assert.False(t, random.IsStructured(random.Structured{Min: ptr(0)}))
	assert.False(t, random.IsStructured((*random.Structured)(nil)))
	assert.False(t, random.IsStructured(map[int]any{0: 1}))
	assert.False(t, random.IsStructured([]float64{0, 1}))
}
