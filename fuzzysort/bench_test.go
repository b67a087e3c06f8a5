package fuzzysort_test

import (
	"testing"

	"github.com/katalvlaran/nputil/fuzzysort"
)

func benchmarkSort(b *testing.B, m int) {
	table, idx := randomTable(3, 3, m, m)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := fuzzysort.Sort(table, idx); err != nil {
			b.Fatalf("Sort failed: %v", err)
		}
	}
}

func BenchmarkSort_1K(b *testing.B)   { benchmarkSort(b, 1_000) }
func BenchmarkSort_100K(b *testing.B) { benchmarkSort(b, 100_000) }
