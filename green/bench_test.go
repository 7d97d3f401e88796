package green_test

import (
	"testing"

	"github.com/openkapitza/kapitza/green"
)

// BenchmarkSweep_SinglePoint measures one full decimation on 6×6 blocks,
// the block dimension of a two-atom unit cell.
func BenchmarkSweep_SinglePoint(b *testing.B) {
	lead := uniformLead(6, 0.3, 0.05, 1)
	opts := green.DefaultOptions()
	opts.Workers = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := green.Sweep(lead, lead, 1.2, 1.2, 1, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSweep_Parallel measures the pool over a 4-wavevector,
// 8-frequency task grid.
func BenchmarkSweep_Parallel(b *testing.B) {
	lead := uniformLead(6, 0.3, 0.05, 4)
	opts := green.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := green.Sweep(lead, lead, 1.0, 2.0, 8, opts); err != nil {
			b.Fatal(err)
		}
	}
}
