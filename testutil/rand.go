package testutil

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// RandomAlphaNum generates random alphanumeric string
// in case length <= 0 it returns empty string
func RandomAlphaNum(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	randomString := make([]byte, length)
	for i := range randomString {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		randomString[i] = charset[num.Int64()]
	}

	return string(randomString), nil
}

// RandomAccount returns a random checksummed account address.
func RandomAccount() string {
	var b [common.AddressLength]byte
	_, _ = rand.Read(b[:])
	return common.BytesToAddress(b[:]).Hex()
}

// RandomDeployment returns a random IPFS style deployment id.
func RandomDeployment() string {
	id, _ := RandomAlphaNum(44)
	return "Qm" + id
}
