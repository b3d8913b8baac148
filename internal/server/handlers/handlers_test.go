package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/go-rangerand/internal/server/handlers"
	"github.com/maynagashev/go-rangerand/pkg/random"
	"github.com/maynagashev/go-rangerand/pkg/response"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "default", raw: "", want: 1},
		{name: "value", raw: "5", want: 5},
		{name: "limit", raw: "10", want: 10},
		{name: "above limit", raw: "11", wantErr: true},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "not a number", raw: "many", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := handlers.ParseCount(tt.raw, 10)
			if tt.wantErr {
				require.ErrorIs(t, err, response.ErrBadRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckCount(t *testing.T) {
	n, err := handlers.CheckCount(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = handlers.CheckCount(4, 3)
	require.ErrorIs(t, err, response.ErrBadRequest)

	_, err = handlers.CheckCount(-2, 3)
	require.ErrorIs(t, err, response.ErrBadRequest)
}

func TestBind(t *testing.T) {
	r := random.New(0, 100)

	assert.True(t, r.Equal(handlers.Bind(r, nil)))

	a := handlers.Bind(r, random.NewSeededSource(9))
	b := handlers.Bind(r, random.NewSeededSource(9))
	assert.Equal(t, a.TakeMany(5), b.TakeMany(5))
}
