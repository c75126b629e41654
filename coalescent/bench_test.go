package coalescent_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/coalescent/coalescent"
	"github.com/katalvlaran/coalescent/rng"
)

// BenchmarkBuild measures Hudson's algorithm across sample sizes; time per
// op should grow linearly with n.
func BenchmarkBuild(b *testing.B) {
	for _, n := range []int{10, 100, 1000, 10000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := rng.New(1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := coalescent.Build(n, src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
