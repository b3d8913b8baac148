package ranges_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/go-rangerand/internal/contracts/ranges"
	"github.com/maynagashev/go-rangerand/pkg/random"
)

func TestDecodeRange(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    random.Range
		wantErr error
	}{
		{name: "object", raw: `{"min": 1, "max": 6, "step": 1}`, want: random.New(1, 6, random.WithStep(1))},
		{name: "pair", raw: `[10, 0]`, want: random.New(0, 10)},
		{name: "serialized string", raw: `"{\"min\": 0, \"max\": 2}"`, want: random.New(0, 2)},
		{name: "number", raw: `5`, want: random.New(0, 1)},
		{name: "empty", raw: ``, wantErr: random.ErrInvalidInput},
		{name: "broken json", raw: `{`, wantErr: random.ErrParse},
		{name: "bool", raw: `true`, wantErr: random.ErrInvalidInput},
		{name: "bad string", raw: `"oops"`, wantErr: random.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ranges.DecodeRange(json.RawMessage(tt.raw))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestSampleRequest_Decode(t *testing.T) {
	var req ranges.SampleRequest
	require.NoError(t, json.Unmarshal([]byte(`{"range": [1, 2], "count": 3}`), &req))

	r, err := req.Decode()
	require.NoError(t, err)
	assert.True(t, random.New(1, 2).Equal(r))
	assert.Equal(t, 3, req.Count)
}

func TestNamedRange_String(t *testing.T) {
	var nilRange *ranges.NamedRange
	assert.Equal(t, "<nil>", nilRange.String())

	nr := &ranges.NamedRange{Name: "dice", Range: random.New(1, 6, random.WithStep(1))}
	assert.Equal(t, "NamedRange{Name: dice, Min: 1, Max: 6, Step: 1, Usfpp: false}", nr.String())
}
