package networkclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Amount is a BigFloat scalar. The service renders it as a string, older
// deployments as a JSON number; null stays nil.
type Amount struct {
	raw *string
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		a.raw = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.raw = &s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	s := n.String()
	a.raw = &s
	return nil
}

func (a Amount) Raw() *string {
	return a.raw
}

type groupedAggregate struct {
	Keys []string `json:"keys"`
	Sum  *struct {
		DelegatorStake Amount `json:"delegatorStake"`
		IndexerStake   Amount `json:"indexerStake"`
		TotalStake     Amount `json:"totalStake"`
	} `json:"sum"`
}

type indexerStakesResponse struct {
	IndexerStakes *struct {
		GroupedAggregates []groupedAggregate `json:"groupedAggregates"`
	} `json:"indexerStakes"`
}

type eraDelegatorIndexersResponse struct {
	EraDelegatorIndexers *struct {
		Nodes []struct {
			Era        uint64 `json:"era"`
			TotalStake Amount `json:"totalStake"`
			SelfStake  Amount `json:"selfStake"`
		} `json:"nodes"`
	} `json:"eraDelegatorIndexers"`
}

type eraNode struct {
	ID        string  `json:"id"`
	StartTime string  `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

type latestErasResponse struct {
	Eras *struct {
		Nodes []eraNode `json:"nodes"`
	} `json:"eras"`
}

// Datetimes come without a zone from some deployments; they are UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}
