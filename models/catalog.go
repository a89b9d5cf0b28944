// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strconv"
)

// FieldType is the declared type tag of a catalog field.
type FieldType string

// Type tags understood by the catalog. int and bigint share a 64-bit integer
// representation, float and real share float64.
const (
	FieldInt     FieldType = "int"
	FieldBigInt  FieldType = "bigint"
	FieldFloat   FieldType = "float"
	FieldReal    FieldType = "real"
	FieldString  FieldType = "string"
	FieldBoolean FieldType = "boolean"
)

// Known reports whether t is one of the supported type tags.
func (t FieldType) Known() bool {
	switch t {
	case FieldInt, FieldBigInt, FieldFloat, FieldReal, FieldString, FieldBoolean:
		return true
	default:
		return false
	}
}

// Zero returns the zero value for t, or null for an unknown tag.
func (t FieldType) Zero() Value {
	switch t {
	case FieldInt, FieldBigInt:
		return IntValue(0)
	case FieldFloat, FieldReal:
		return FloatValue(0)
	case FieldString:
		return StringValue("")
	case FieldBoolean:
		return BoolValue(false)
	default:
		return NullValue()
	}
}

// Coerce converts v to the representation of t. The second result is false
// when the conversion would lose information or t is unknown.
func (t FieldType) Coerce(v Value) (Value, bool) {
	switch t {
	case FieldInt, FieldBigInt:
		switch v.Kind() {
		case KindInt:
			return v, true
		case KindFloat:
			f, _ := v.Float()
			if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
				return Value{}, false
			}
			return IntValue(int64(f)), true
		case KindString:
			s, _ := v.Str()
			i, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return Value{}, false
			}
			return IntValue(i), true
		}
	case FieldFloat, FieldReal:
		switch v.Kind() {
		case KindFloat:
			return v, true
		case KindInt:
			i, _ := v.Int()
			return FloatValue(float64(i)), true
		case KindString:
			s, _ := v.Str()
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Value{}, false
			}
			return FloatValue(f), true
		}
	case FieldString:
		if v.IsNull() {
			return Value{}, false
		}
		return StringValue(v.String()), true
	case FieldBoolean:
		switch v.Kind() {
		case KindBool:
			return v, true
		case KindString:
			s, _ := v.Str()
			b, err := strconv.ParseBool(s)
			if err != nil {
				return Value{}, false
			}
			return BoolValue(b), true
		}
	}

	return Value{}, false
}

// Field describes one permitted key of player custom data.
type Field struct {
	Name    string    `json:"name"`
	Type    FieldType `json:"type"`
	Default Value     `json:"default"`
}

// Catalog is the ordered set of fields a player's custom data may contain.
type Catalog struct {
	Fields []Field `json:"fields"`
}

// Lookup returns the field named name.
func (c Catalog) Lookup(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults returns a fresh mapping from field name to its default value.
func (c Catalog) Defaults() map[string]Value {
	defaults := make(map[string]Value, len(c.Fields))
	for _, f := range c.Fields {
		defaults[f.Name] = f.Default
	}
	return defaults
}

// Names returns the field names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		names = append(names, f.Name)
	}
	return names
}
