// Package discovery previews large or nested values by truncating every
// collection in them to its first few items.
package discovery

import (
	"cmp"
	"fmt"
	"reflect"

	"golang.org/x/exp/slices"
)

// Etc marks the end of a truncated collection.
type Etc struct{}

func (Etc) String() string { return "..." }

// Tuple is the head of an array or an iterator.
type Tuple []any

// Map is the head of a map, in key order.
type Map []Entry

type Entry struct {
	Key   any
	Value any
}

// Head recursively truncates x to n items per collection. Slices become
// []any, arrays and iter.Seq functions become Tuple, iter.Seq2 functions and
// maps become Map, and channels are drained of at most n values. Strings and
// scalars are returned as is. With ellipsis, a truncated collection ends with
// Etc.
func Head(x any, n int, ellipsis bool) any {
	return head(reflect.ValueOf(x), max(n, 0), ellipsis)
}

func head(v reflect.Value, n int, ellipsis bool) any {
	if !v.IsValid() {
		return nil
	}

	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case Tuple:
			return Tuple(headList(v, n, ellipsis))
		case Map:
			return headEntries(x, n, ellipsis)
		case Etc:
			return x
		}
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return head(v.Elem(), n, ellipsis)

	case reflect.Pointer:
		if !v.IsNil() {
			switch v.Elem().Kind() {
			case reflect.Slice, reflect.Array, reflect.Map:
				return head(v.Elem(), n, ellipsis)
			}
		}

	case reflect.Slice:
		if v.IsNil() {
			return []any(nil)
		}
		return headList(v, n, ellipsis)

	case reflect.Array:
		return Tuple(headList(v, n, ellipsis))

	case reflect.Map:
		return headMap(v, n, ellipsis)

	case reflect.Chan:
		return headChan(v, n, ellipsis)

	case reflect.Func:
		if !v.IsNil() {
			switch seqArity(v.Type()) {
			case 1:
				return headSeq(v, n, ellipsis)
			case 2:
				return headSeq2(v, n, ellipsis)
			}
		}
	}

	if !v.CanInterface() {
		return nil
	}

	return v.Interface()
}

func headList(v reflect.Value, n int, ellipsis bool) []any {
	items := make([]any, 0, min(n, v.Len())+1)
	for i := 0; i < min(n, v.Len()); i++ {
		items = append(items, head(v.Index(i), n, ellipsis))
	}

	if ellipsis && v.Len() > n {
		items = append(items, Etc{})
	}

	return items
}

func headEntries(m Map, n int, ellipsis bool) Map {
	out := make(Map, 0, min(n, len(m))+1)
	for _, e := range m[:min(n, len(m))] {
		out = append(out, Entry{e.Key, Head(e.Value, n, ellipsis)})
	}

	if ellipsis && len(m) > n {
		out = append(out, Entry{Etc{}, Etc{}})
	}

	return out
}

func headMap(v reflect.Value, n int, ellipsis bool) Map {
	keys := v.MapKeys()
	slices.SortFunc(keys, compareKeys)

	out := make(Map, 0, min(n, len(keys))+1)
	for _, k := range keys[:min(n, len(keys))] {
		out = append(out, Entry{head(k, n, ellipsis), head(v.MapIndex(k), n, ellipsis)})
	}

	if ellipsis && len(keys) > n {
		out = append(out, Entry{Etc{}, Etc{}})
	}

	return out
}

// headChan cannot tell whether more values follow without consuming one, so
// a channel still open after n receives counts as truncated.
func headChan(v reflect.Value, n int, ellipsis bool) []any {
	if v.IsNil() || v.Type().ChanDir()&reflect.RecvDir == 0 {
		return nil
	}

	var items []any
	for len(items) < n {
		x, ok := v.Recv()
		if !ok {
			return items
		}

		items = append(items, head(x, n, ellipsis))
	}

	if ellipsis {
		items = append(items, Etc{})
	}

	return items
}

// seqArity reports 1 for iter.Seq shaped functions, 2 for iter.Seq2 and 0
// otherwise.
func seqArity(t reflect.Type) int {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return 0
	}

	y := t.In(0)
	if y.Kind() != reflect.Func || y.NumOut() != 1 || y.Out(0).Kind() != reflect.Bool {
		return 0
	}

	if y.NumIn() == 1 || y.NumIn() == 2 {
		return y.NumIn()
	}

	return 0
}

// pull drives a push iterator, handing the yielded values to take until it
// has accepted n of them.
func pull(v reflect.Value, n int, take func(args []reflect.Value)) (truncated bool) {
	y := v.Type().In(0)
	stop, more := reflect.ValueOf(false).Convert(y.Out(0)), reflect.ValueOf(true).Convert(y.Out(0))

	count := 0
	yield := reflect.MakeFunc(y, func(args []reflect.Value) []reflect.Value {
		if count == n {
			truncated = true
			return []reflect.Value{stop}
		}

		count++
		take(args)
		return []reflect.Value{more}
	})

	v.Call([]reflect.Value{yield})
	return truncated
}

func headSeq(v reflect.Value, n int, ellipsis bool) Tuple {
	items := Tuple{}
	truncated := pull(v, n, func(args []reflect.Value) {
		items = append(items, head(args[0], n, ellipsis))
	})

	if ellipsis && truncated {
		items = append(items, Etc{})
	}

	return items
}

func headSeq2(v reflect.Value, n int, ellipsis bool) Map {
	out := Map{}
	truncated := pull(v, n, func(args []reflect.Value) {
		out = append(out, Entry{head(args[0], n, ellipsis), head(args[1], n, ellipsis)})
	})

	if ellipsis && truncated {
		out = append(out, Entry{Etc{}, Etc{}})
	}

	return out
}

// compareKeys orders numbers numerically, strings lexically and anything
// else by its formatted form.
func compareKeys(a, b reflect.Value) int {
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			return cmp.Compare(fa, fb)
		}
	}

	if a.Kind() == reflect.String && b.Kind() == reflect.String {
		return cmp.Compare(a.String(), b.String())
	}

	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func number(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}

	return 0, false
}
