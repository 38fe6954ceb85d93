package services

import (
	"context"
	"math"

	"github.com/pratik-mahalle/gigmarket/internal/domain/info"
)

// InfoService implements info.Service
type InfoService struct {
	repo info.Repository
}

// NewInfoService creates a new InfoService
func NewInfoService(repo info.Repository) *InfoService {
	return &InfoService{repo: repo}
}

// Stats returns the platform snapshot with the average rating rounded to
// two decimals
func (s *InfoService) Stats(ctx context.Context) (*info.BaseInfo, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.AverageRating = math.Round(stats.AverageRating*100) / 100
	return stats, nil
}
