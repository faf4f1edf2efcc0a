package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	t.Run("checksums lower case", func(t *testing.T) {
		addr, err := NormalizeAddress(" 0x52908400098527886e0f7030069857d2e4169ee7 ")
		require.NoError(t, err)
		assert.Equal(t, "0x52908400098527886E0F7030069857D2E4169EE7", addr)
	})

	t.Run("prefix is optional", func(t *testing.T) {
		addr, err := NormalizeAddress("de709f2102306220921060314715629080e2fb77")
		require.NoError(t, err)
		assert.Equal(t, "0xde709f2102306220921060314715629080e2fB77", addr)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, addr := range []string{"", "0x123", "0xzz08400098527886e0f7030069857d2e4169ee7"} {
			_, err := NormalizeAddress(addr)
			assert.Error(t, err, addr)
		}
	})
}
