// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "slices"

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindName = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindName) {
		return "invalid"
	}
	return kindName[k]
}

// A Value is an arbitrary JSON value. The concrete type of a Value is one of
// Null, Bool, Number, String, Array, or *Object.
type Value interface {
	Kind() Kind

	isValue()
}

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return NullKind }
func (Null) isValue()   {}

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }
func (Bool) isValue()   {}

// A Number is a double-precision numeric value.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return NumberKind }
func (Number) isValue()   {}

// A String is a decoded string value.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }
func (String) isValue()   {}

// An Array is an ordered sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }
func (Array) isValue()   {}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Object is an ordered collection of key-value members with distinct keys.
// The zero value is an empty object ready for use.
type Object struct {
	members []Member
	index   map[string]int // key to offset in members
}

// Kind satisfies the Value interface.
func (*Object) Kind() Kind { return ObjectKind }
func (*Object) isValue()   {}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.members) }

// Find returns the value of the member of o with the given key, and reports
// whether it was found.
func (o *Object) Find(key string) (Value, bool) {
	if i, ok := o.index[key]; ok {
		return o.members[i].Value, true
	}
	return nil, false
}

// Set sets the value of the member with the given key. If o already has a
// member with that key, its value is replaced and it keeps its position;
// otherwise a new member is added at the end.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Keys returns the keys of o in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns a copy of the members of o in order.
func (o *Object) Members() []Member { return slices.Clone(o.members) }

// Equal reports whether o and p have equal members in the same order.
func (o *Object) Equal(p *Object) bool {
	if o == nil || p == nil {
		return o == p
	}
	return slices.EqualFunc(o.members, p.members, func(a, b Member) bool {
		return a.Key == b.Key && Equal(a.Value, b.Value)
	})
}

// Equal reports whether a and b are structurally equal. Numbers compare by
// value, so NaN is not equal to itself.
func Equal(a, b Value) bool {
	switch t := a.(type) {
	case Array:
		u, ok := b.(Array)
		return ok && slices.EqualFunc(t, u, Equal)
	case *Object:
		u, ok := b.(*Object)
		return ok && t.Equal(u)
	case nil:
		return b == nil
	default:
		return a == b
	}
}

// ToAny converts v to plain Go values: nil, bool, float64, string, []any,
// and map[string]any. Member order is not preserved by the map.
func ToAny(v Value) any {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = ToAny(elt)
		}
		return out
	case *Object:
		out := make(map[string]any, t.Len())
		for _, m := range t.members {
			out[m.Key] = ToAny(m.Value)
		}
		return out
	default:
		return nil
	}
}
