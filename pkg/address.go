package pkg

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NormalizeAddress validates an account address and returns its checksummed form.
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("invalid address %q", address)
	}

	return common.HexToAddress(address).Hex(), nil
}
