package health

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func BenchmarkCacheChecker_Check(b *testing.B) {
	c := NewCacheChecker("views", fakeStats{n: 8, max: 10})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Check(ctx)
	}
}

func BenchmarkAggregator_CheckAll(b *testing.B) {
	for _, n := range []int{1, 10, 50} {
		b.Run(fmt.Sprintf("checkers=%d", n), func(b *testing.B) {
			agg := NewAggregator()
			for i := range n {
				name := fmt.Sprintf("c%d", i)
				agg.Register(name, NewCacheChecker(name, fakeStats{n: i, max: 25}))
			}
			ctx := context.Background()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = agg.CheckAll(ctx)
			}
		})
	}
}

func BenchmarkDetailedHandler(b *testing.B) {
	agg := NewAggregator()
	agg.Register("views", NewCacheChecker("views", fakeStats{n: 3, max: 4}))
	h := DetailedHandler(agg)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h(httptest.NewRecorder(), req)
	}
}
