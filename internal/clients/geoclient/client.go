package geoclient

import (
	"context"

	"github.com/leopardracer/network-app/internal/clients/graphqlclient"
)

const getGeoInformationQuery = `
query GetGeoInformation($indexers: [String!]!) {
  geoips(indexers: $indexers) {
    error
    indexer
    name
    country {
      names {
        en
      }
    }
    city {
      names {
        en
      }
    }
    location {
      latitude
      longitude
    }
  }
}`

//go:generate mockery --name=GeoInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_geo_client.go
type GeoInterface interface {
	GetGeoInformation(ctx context.Context, indexers []string) ([]GeoInformation, error)
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoInformation is the resolved location of one indexer. Country, City and
// Location are empty when the lookup could not resolve them.
type GeoInformation struct {
	Indexer  string    `json:"indexer"`
	Name     string    `json:"name"`
	Country  string    `json:"country,omitempty"`
	City     string    `json:"city,omitempty"`
	Location *Location `json:"location,omitempty"`
	Error    string    `json:"error,omitempty"`
}

type localizedNames struct {
	Names *struct {
		En *string `json:"en"`
	} `json:"names"`
}

func (n *localizedNames) english() string {
	if n == nil || n.Names == nil || n.Names.En == nil {
		return ""
	}
	return *n.Names.En
}

type geoipsResponse struct {
	Geoips []struct {
		Error    *string         `json:"error"`
		Indexer  string          `json:"indexer"`
		Name     string          `json:"name"`
		Country  *localizedNames `json:"country"`
		City     *localizedNames `json:"city"`
		Location *struct {
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
		} `json:"location"`
	} `json:"geoips"`
}

type Client struct {
	gql graphqlclient.Executor
}

func NewClient(gql graphqlclient.Executor) *Client {
	return &Client{gql: gql}
}

// GetGeoInformation resolves the location of the given indexers. An empty list
// yields an empty result without querying the service.
func (c *Client) GetGeoInformation(ctx context.Context, indexers []string) ([]GeoInformation, error) {
	if len(indexers) == 0 {
		return []GeoInformation{}, nil
	}

	var resp geoipsResponse
	vars := map[string]any{"indexers": indexers}
	if err := c.gql.Do(ctx, "GetGeoInformation", getGeoInformationQuery, vars, &resp); err != nil {
		return nil, err
	}

	out := make([]GeoInformation, 0, len(resp.Geoips))
	for _, g := range resp.Geoips {
		info := GeoInformation{
			Indexer: g.Indexer,
			Name:    g.Name,
			Country: g.Country.english(),
			City:    g.City.english(),
		}
		if g.Error != nil {
			info.Error = *g.Error
		}
		if g.Location != nil && g.Location.Latitude != nil && g.Location.Longitude != nil {
			info.Location = &Location{Latitude: *g.Location.Latitude, Longitude: *g.Location.Longitude}
		}
		out = append(out, info)
	}

	return out, nil
}
