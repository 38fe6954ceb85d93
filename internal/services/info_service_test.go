package services

import (
	"context"
	"testing"

	"github.com/pratik-mahalle/gigmarket/internal/domain/info"
	"github.com/pratik-mahalle/gigmarket/internal/testutil"
)

func TestInfoServiceRounding(t *testing.T) {
	tests := []struct {
		name string
		avg  float64
		want float64
	}{
		{name: "no reviews", avg: 0, want: 0},
		{name: "repeating decimal", avg: 4.333333, want: 4.33},
		{name: "round up", avg: 4.667, want: 4.67},
		{name: "exact", avg: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &testutil.MockInfoRepository{Snapshot: info.BaseInfo{
				ReviewCount:   3,
				AverageRating: tt.avg,
			}}
			svc := NewInfoService(repo)

			stats, err := svc.Stats(context.Background())
			if err != nil {
				t.Fatalf("Stats() error = %v", err)
			}
			if stats.AverageRating != tt.want {
				t.Errorf("average_rating = %v, want %v", stats.AverageRating, tt.want)
			}
		})
	}
}
