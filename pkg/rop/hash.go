package rop

import (
	"encoding/binary"
	"math"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
)

// maxHashDepth bounds the walk into pointers of non-comparable payloads,
// which may be cyclic.
const maxHashDepth = 32

// HashOf returns the hash a Result holding v reports. Payloads that implement
// Hasher hash themselves; everything else is walked with reflection so that
// values equal under equalPayload hash the same.
func HashOf[T any](v T) uint64 {
	if h, ok := any(v).(Hasher); ok {
		return h.Hash()
	}
	if t, ok := any(v).(time.Time); ok {
		// time.Time equality is by instant, not by location
		w := hashWriter{d: xxhash.New()}
		w.uint(uint64(t.Unix()))
		w.uint(uint64(t.Nanosecond()))
		return w.d.Sum64()
	}

	rv := reflect.ValueOf(any(v))
	w := hashWriter{d: xxhash.New(), deep: rv.IsValid() && !rv.Comparable()}
	w.value(rv, 0)
	return w.d.Sum64()
}

func equalPayload[T any](a, b T) bool {
	if e, ok := any(a).(Equaler[T]); ok {
		return e.Equal(b)
	}

	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == bv
	}

	ra, rb := reflect.ValueOf(av), reflect.ValueOf(bv)
	if ra.Type() == rb.Type() && ra.Comparable() && rb.Comparable() {
		return av == bv
	}
	return reflect.DeepEqual(av, bv)
}

type hashWriter struct {
	d    *xxhash.Digest
	deep bool
	buf  [8]byte
}

func (w *hashWriter) uint(u uint64) {
	binary.LittleEndian.PutUint64(w.buf[:], u)
	_, _ = w.d.Write(w.buf[:])
}

func (w *hashWriter) float(f float64) {
	if f == 0 {
		f = 0 // folds -0 into +0
	}
	w.uint(math.Float64bits(f))
}

func (w *hashWriter) value(v reflect.Value, depth int) {
	if !v.IsValid() {
		w.uint(0)
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			w.uint(1)
		} else {
			w.uint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.uint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.uint(v.Uint())
	case reflect.Float32, reflect.Float64:
		w.float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		w.float(real(c))
		w.float(imag(c))
	case reflect.String:
		w.uint(uint64(v.Len()))
		_, _ = w.d.WriteString(v.String())
	case reflect.Interface:
		if v.IsNil() {
			w.uint(0)
			return
		}
		w.value(v.Elem(), depth)
	case reflect.Pointer:
		if v.IsNil() {
			w.uint(0)
			return
		}
		if !w.deep {
			w.uint(uint64(v.Pointer()))
			return
		}
		if depth < maxHashDepth {
			w.value(v.Elem(), depth+1)
		}
	case reflect.Chan, reflect.UnsafePointer:
		w.uint(uint64(v.Pointer()))
	case reflect.Func:
		// funcs are only ever equal when both are nil
		w.uint(0)
	case reflect.Array, reflect.Slice:
		w.uint(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			w.value(v.Index(i), depth)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			w.value(v.Field(i), depth)
		}
	case reflect.Map:
		w.uint(uint64(v.Len()))
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			entry := hashWriter{d: xxhash.New(), deep: w.deep}
			entry.value(iter.Key(), depth)
			entry.value(iter.Value(), depth)
			sum += entry.d.Sum64()
		}
		w.uint(sum)
	}
}
