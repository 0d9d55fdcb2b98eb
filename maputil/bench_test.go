package maputil_test

import (
	"strconv"
	"testing"

	"github.com/nubs/primaids/maputil"
)

// makeMap creates a Map[int] of size n for benchmarks.
func makeMap(n int) *maputil.Map[int] {
	m := maputil.New[int]()
	for i := 0; i < n; i++ {
		m.Set(maputil.StringKey("key"+strconv.Itoa(i)), i)
	}
	return m
}

func BenchmarkSet(b *testing.B) {
	for i := 0; i < b.N; i++ {
		makeMap(1_000)
	}
}

func BenchmarkGet(b *testing.B) {
	m := makeMap(1_000)
	k := maputil.StringKey("key500")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(k)
	}
}

func BenchmarkFormat(b *testing.B) {
	m := makeMap(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		maputil.Format(m, "{key}={value};")
	}
}

func BenchmarkOnly(b *testing.B) {
	m := makeMap(1_000)
	keys := make([]maputil.Key, 100)
	for i := range keys {
		keys[i] = maputil.StringKey("key" + strconv.Itoa(i*10))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		maputil.Only(m, keys...)
	}
}

func BenchmarkSplit(b *testing.B) {
	m := makeMap(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maputil.Split(m, 16); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetNested(b *testing.B) {
	m := maputil.New[any]()
	maputil.SetNested(m, "a.b.c.d.e", 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		maputil.GetNested(m, "a.b.c.d.e")
	}
}

func BenchmarkGroupBy(b *testing.B) {
	records := make([]*maputil.Map[any], 1_000)
	for i := range records {
		records[i] = maputil.New[any]().
			Set(maputil.StringKey("target"), any(i%10)).
			Set(maputil.StringKey("id"), any(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		maputil.GroupBy(records, maputil.StringKey("target"))
	}
}
