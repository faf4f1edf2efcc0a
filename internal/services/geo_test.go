package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leopardracer/network-app/internal/clients/geoclient"
	"github.com/leopardracer/network-app/internal/clients/graphqlclient"
	"github.com/leopardracer/network-app/internal/types"
	"github.com/leopardracer/network-app/tests/mocks"
)

func TestGeoService(t *testing.T) {
	ctx := context.Background()

	t.Run("passes results through", func(t *testing.T) {
		geo := mocks.NewGeoInterface(t)
		geo.On("GetGeoInformation", mock.Anything, []string{"0xa"}).
			Return([]geoclient.GeoInformation{{Indexer: "0xa", Country: "Germany"}}, nil).Once()

		info, err := NewGeoService(geo).GetGeoInformation(ctx, []string{"0xa"})
		require.Nil(t, err)
		assert.Equal(t, []geoclient.GeoInformation{{Indexer: "0xa", Country: "Germany"}}, info)
	})

	t.Run("request errors are rpc errors", func(t *testing.T) {
		geo := mocks.NewGeoInterface(t)
		geo.On("GetGeoInformation", mock.Anything, mock.Anything).
			Return(nil, &graphqlclient.RequestError{Operation: "GetGeoInformation", StatusCode: 503}).Once()

		_, err := NewGeoService(geo).GetGeoInformation(ctx, []string{"0xa"})
		require.NotNil(t, err)
		assert.Equal(t, types.RpcError, err.ErrorCode)
	})
}
