package health

import (
	"context"
	"testing"
	"time"
)

// BenchmarkAggregator_Evaluate measures a readiness evaluation of four checks.
func BenchmarkAggregator_Evaluate(b *testing.B) {
	settings, _ := NewSettings([]string{"AlwaysTrueCheck", "AlwaysTrueCheck", "AlwaysFalseCheck", "AlwaysTrueCheck"}, nil, "", "")
	agg, err := NewAggregator(nil, settings, AggregatorConfig{Registry: testRegistry()})
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = agg.Evaluate(ctx, Ready)
	}
}

// BenchmarkAggregator_EvaluateWithTimeout measures the timeout wrapper overhead.
func BenchmarkAggregator_EvaluateWithTimeout(b *testing.B) {
	settings, _ := NewSettings([]string{"AlwaysTrueCheck", "AlwaysTrueCheck"}, nil, "", "")
	agg, err := NewAggregator(nil, settings, AggregatorConfig{
		Registry:     testRegistry(),
		CheckTimeout: time.Second,
	})
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = agg.Evaluate(ctx, Ready)
	}
}

// BenchmarkAggregator_Concurrent measures parallel probes against one aggregator.
func BenchmarkAggregator_Concurrent(b *testing.B) {
	settings, _ := NewSettings([]string{"AlwaysTrueCheck"}, []string{"AlwaysTrueCheck"}, "", "")
	agg, err := NewAggregator(nil, settings, AggregatorConfig{Registry: testRegistry()})
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = agg.Evaluate(ctx, Alive)
		}
	})
}

// BenchmarkCombine measures combining outcomes.
func BenchmarkCombine(b *testing.B) {
	outcomes := []Outcome{Success(true), Success(true), Success(false), Failure(errOhDear)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Combine(outcomes...)
	}
}
