package output

import (
	"fmt"
	"testing"

	"github.com/vburojevic/moncov/internal/domain"
)

func benchRecords(n int) []domain.MonitorRecord {
	records := make([]domain.MonitorRecord, n)
	for i := range records {
		records[i] = domain.MonitorRecord{
			System:    fmt.Sprintf("system-%03d", i%100),
			Component: fmt.Sprintf("component-%d", i%7),
			Monitor:   fmt.Sprintf("monitor-%d", i%31),
			Required:  i%3 != 0,
			Monitored: i%4 != 0,
		}
	}
	return records
}

func BenchmarkAggregateRecords(b *testing.B) {
	records := benchRecords(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = AggregateRecords(records)
	}
}

func BenchmarkRender(b *testing.B) {
	systems, overall := AggregateRecords(benchRecords(10000))

	for _, f := range Formats() {
		b.Run(f.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := RenderString(systems, overall, f); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
