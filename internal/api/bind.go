package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/leopardracer/network-app/internal/era"
	"github.com/leopardracer/network-app/internal/services"
	"github.com/leopardracer/network-app/internal/types"
	"github.com/leopardracer/network-app/pkg"
)

const maxBodySize = 1 << 20

// parseAccount validates an optional account address and returns it checksummed.
func parseAccount(raw string) (string, *types.Error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	account, err := pkg.NormalizeAddress(raw)
	if err != nil {
		return "", types.NewBadRequestError(err)
	}
	return account, nil
}

func parseBool(name, raw string) (bool, *types.Error) {
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, types.NewBadRequestError(fmt.Errorf("invalid %s %q", name, raw))
	}
	return v, nil
}

func parseRange(raw string) (era.Range, *types.Error) {
	rng, err := era.ParseRange(raw)
	if err != nil {
		return "", types.NewBadRequestError(err)
	}
	return rng, nil
}

// chartRequest binds the query of the stake chart endpoints.
func chartRequest(r *http.Request) (services.ChartRequest, *types.Error) {
	q := r.URL.Query()

	account, err := parseAccount(q.Get("account"))
	if err != nil {
		return services.ChartRequest{}, err
	}
	rng, err := parseRange(q.Get("range"))
	if err != nil {
		return services.ChartRequest{}, err
	}
	delegated, err := parseBool("delegated_to_others", q.Get("delegated_to_others"))
	if err != nil {
		return services.ChartRequest{}, err
	}

	req := services.ChartRequest{
		Account:           account,
		Range:             rng,
		DelegatedToOthers: delegated,
		Title:             q.Get("title"),
	}
	if dims := q.Get("dimensions"); dims != "" {
		parts := strings.Split(dims, ",")
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return services.ChartRequest{}, types.NewBadRequestError(fmt.Errorf("dimensions must be two comma separated names"))
		}
		req.Dimensions = [2]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}
	}

	return req, nil
}

func decodeBody(r *http.Request, dst any) *types.Error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return types.NewBadRequestError(fmt.Errorf("invalid request body: %w", err))
	}
	return nil
}

// splitList parses a comma separated query value, dropping blanks.
func splitList(raw string) []string {
	out := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
