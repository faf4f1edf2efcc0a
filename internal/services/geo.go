package services

import (
	"context"

	"github.com/leopardracer/network-app/internal/clients/geoclient"
	"github.com/leopardracer/network-app/internal/types"
)

type GeoService struct {
	geo geoclient.GeoInterface
}

func NewGeoService(geo geoclient.GeoInterface) *GeoService {
	return &GeoService{geo: geo}
}

func (s *GeoService) GetGeoInformation(ctx context.Context, indexers []string) ([]geoclient.GeoInformation, *types.Error) {
	info, err := s.geo.GetGeoInformation(ctx, indexers)
	if err != nil {
		return nil, classify(err, "failed to get geo information")
	}
	return info, nil
}
