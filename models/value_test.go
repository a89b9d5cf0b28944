package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── JSON ─────────────────────────────────────────────────────────────────────

func TestValue_UnmarshalJSON_Kinds(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Value
	}{
		{"null", `null`, NullValue()},
		{"integer", `42`, IntValue(42)},
		{"negative integer", `-7`, IntValue(-7)},
		{"fraction", `1.5`, FloatValue(1.5)},
		{"whole float", `2.0`, FloatValue(2)},
		{"exponent", `1e3`, FloatValue(1000)},
		{"string", `"novice"`, StringValue("novice")},
		{"bool", `true`, BoolValue(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Value
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_UnmarshalJSON_RejectsContainers(t *testing.T) {
	for _, in := range []string{`{"a":1}`, `[1,2]`} {
		var v Value
		err := json.Unmarshal([]byte(in), &v)
		assert.ErrorIs(t, err, ErrUnsupportedValue, in)
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"null", NullValue(), `null`},
		{"int", IntValue(3), `3`},
		{"float", FloatValue(0.25), `0.25`},
		{"whole float keeps fraction", FloatValue(2), `2.0`},
		{"string", StringValue("x"), `"x"`},
		{"bool", BoolValue(false), `false`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestValue_MarshalJSON_NonFinite(t *testing.T) {
	_, err := json.Marshal(FloatValue(math.NaN()))
	assert.Error(t, err)

	_, err = json.Marshal(FloatValue(math.Inf(1)))
	assert.Error(t, err)
}

func TestValue_MapRoundTripKeepsKinds(t *testing.T) {
	in := map[string]Value{
		"level":    IntValue(1),
		"accuracy": FloatValue(0),
		"title":    StringValue("novice"),
		"premium":  BoolValue(false),
	}

	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out map[string]Value
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

// ─── Accessors ────────────────────────────────────────────────────────────────

func TestValue_Accessors(t *testing.T) {
	i, ok := IntValue(5).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(5), i)

	_, ok = IntValue(5).Float()
	assert.False(t, ok)

	s, ok := StringValue("a").Str()
	assert.True(t, ok)
	assert.Equal(t, "a", s)

	b, ok := BoolValue(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	assert.True(t, NullValue().IsNull())
	assert.Equal(t, KindNull, Value{}.Kind())
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, IntValue(1).Equal(IntValue(1)))
	assert.False(t, IntValue(1).Equal(FloatValue(1)))
	assert.False(t, StringValue("1").Equal(IntValue(1)))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "null", NullValue().String())
	assert.Equal(t, "12", IntValue(12).String())
	assert.Equal(t, "1.5", FloatValue(1.5).String())
	assert.Equal(t, "true", BoolValue(true).String())
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, NullValue()},
		{"int", 3, IntValue(3)},
		{"int64", int64(-3), IntValue(-3)},
		{"small uint64", uint64(9), IntValue(9)},
		{"huge uint64", uint64(math.MaxUint64), FloatValue(float64(uint64(math.MaxUint64)))},
		{"float64", 0.5, FloatValue(0.5)},
		{"json number", json.Number("10"), IntValue(10)},
		{"json fraction", json.Number("10.5"), FloatValue(10.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ValueOf([]any{1})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}
