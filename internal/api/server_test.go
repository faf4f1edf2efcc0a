package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leopardracer/network-app/internal/chart"
	"github.com/leopardracer/network-app/internal/clients/consumerhost"
	"github.com/leopardracer/network-app/internal/clients/geoclient"
	"github.com/leopardracer/network-app/internal/clients/graphqlclient"
	"github.com/leopardracer/network-app/internal/config"
	"github.com/leopardracer/network-app/internal/era"
	"github.com/leopardracer/network-app/internal/observability/metrics"
	"github.com/leopardracer/network-app/internal/series"
	"github.com/leopardracer/network-app/internal/services"
	"github.com/leopardracer/network-app/tests/mocks"
	"github.com/leopardracer/network-app/testutil"
)

const (
	lowerAccount    = "0x52908400098527886e0f7030069857d2e4169ee7"
	checksumAccount = "0x52908400098527886E0F7030069857D2E4169EE7"
)

func TestMain(m *testing.M) {
	metrics.Register()
	m.Run()
}

type testEnv struct {
	server  *httptest.Server
	network *mocks.NetworkInterface
	geo     *mocks.GeoInterface
	host    *mocks.ConsumerHostInterface
	svc     *services.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		network: mocks.NewNetworkInterface(t),
		geo:     mocks.NewGeoInterface(t),
		host:    mocks.NewConsumerHostInterface(t),
	}
	cfg := &config.Config{
		Chart:  config.ChartConfig{TokenSymbol: "SQT", TokenDecimals: 18},
		Poller: config.PollerConfig{EraPollingInterval: time.Minute},
	}
	env.svc = services.NewService(cfg, env.network, env.geo, env.host)
	env.server = httptest.NewServer(NewRouter(env.svc))
	t.Cleanup(func() {
		env.server.Close()
		env.svc.Shutdown()
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (e *testEnv) expectStakes(times int) {
	sums := series.ZeroSums()
	sums.DelegatorStake = math.LegacyNewDecFromInt(math.NewIntWithDecimal(100, 18))
	sums.IndexerStake = math.LegacyNewDecFromInt(math.NewIntWithDecimal(50, 18))
	sums.TotalStake = math.LegacyNewDecFromInt(math.NewIntWithDecimal(150, 18))

	e.network.On("GetCurrentEra", mock.Anything).Return(&era.Metadata{
		Index:            10,
		Period:           7 * era.Day,
		EstimatedEndTime: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
	}, nil).Times(times)
	e.network.On("GetIndexerStakesByEras", mock.Anything, mock.Anything).
		Return([]series.Record{{Keys: []string{"0x8"}, Sum: &sums}}, nil).Times(times)
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/healthcheck", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"))
}

func TestGetStakeChart(t *testing.T) {
	env := newTestEnv(t)
	env.expectStakes(1)

	resp := env.do(t, http.MethodGet, "/v1/stake-chart?range=lm", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))

	data := decode[chart.Data](t, resp)
	assert.Equal(t, "Network Staking and Delegation", data.Title)
	assert.Equal(t, [][]float64{{0, 0, 50, 50, 50}, {0, 0, 100, 100, 100}}, data.Series)
	assert.Equal(t, []float64{0, 0, 150, 150, 150}, data.Raw.Total)
}

func TestGetStakeChart_Account(t *testing.T) {
	env := newTestEnv(t)
	env.network.On("GetCurrentEra", mock.Anything).Return(&era.Metadata{Index: 2, Period: era.Day}, nil).Once()
	env.network.On("GetIndexerStakesByIndexer", mock.Anything, checksumAccount, []string{"0x0", "0x1", "0x2"}).
		Return([]series.Record{}, nil).Once()

	resp := env.do(t, http.MethodGet, "/v1/stake-chart?account="+lowerAccount, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decode[chart.Data](t, resp)
	assert.Equal(t, []float64{0, 0, 0}, data.Raw.Total)
}

func TestGetStakeChart_PNG(t *testing.T) {
	env := newTestEnv(t)
	env.expectStakes(1)

	resp := env.do(t, http.MethodGet, "/v1/stake-chart?format=png", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	var body bytes.Buffer
	_, err := body.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body.Bytes(), []byte("\x89PNG")))
}

func TestGetStakeChart_Errors(t *testing.T) {
	t.Run("invalid query", func(t *testing.T) {
		env := newTestEnv(t)
		// only the unsupported format reaches the builder
		env.expectStakes(1)
		for _, query := range []string{
			"account=not-an-address",
			"range=lw",
			"delegated_to_others=maybe",
			"dimensions=only-one",
			"format=svg",
		} {
			resp := env.do(t, http.MethodGet, "/v1/stake-chart?"+query, nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, query)
			assert.Equal(t, "BAD_REQUEST", decode[ErrorResponse](t, resp).ErrorCode, query)
		}
	})

	t.Run("rpc error", func(t *testing.T) {
		env := newTestEnv(t)
		env.network.On("GetCurrentEra", mock.Anything).
			Return(nil, &graphqlclient.RequestError{Operation: "GetLatestEras", StatusCode: 503, Message: "secret upstream detail"}).Once()

		resp := env.do(t, http.MethodGet, "/v1/stake-chart", nil)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		body := decode[ErrorResponse](t, resp)
		assert.Equal(t, "RPC_ERROR", body.ErrorCode)
		assert.NotContains(t, body.Message, "secret")
	})

	t.Run("internal error hides details", func(t *testing.T) {
		env := newTestEnv(t)
		env.network.On("GetCurrentEra", mock.Anything).Return(nil, errors.New("secret internal detail")).Once()

		resp := env.do(t, http.MethodGet, "/v1/stake-chart", nil)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decode[ErrorResponse](t, resp)
		assert.Equal(t, "INTERNAL_SERVICE_ERROR", body.ErrorCode)
		assert.Equal(t, "Internal service error", body.Message)
	})

	t.Run("no data", func(t *testing.T) {
		env := newTestEnv(t)
		env.network.On("GetCurrentEra", mock.Anything).Return(&era.Metadata{Index: 3}, nil).Once()
		env.network.On("GetIndexerStakesByEras", mock.Anything, mock.Anything).
			Return([]series.Record{{Keys: nil}}, nil).Once()

		resp := env.do(t, http.MethodGet, "/v1/stake-chart", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decode[ErrorResponse](t, resp).ErrorCode)
	})
}

func TestGetStakeChartTooltip(t *testing.T) {
	env := newTestEnv(t)
	env.expectStakes(3)

	resp := env.do(t, http.MethodGet, "/v1/stake-chart/tooltip?index=4", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, chart.Tooltip{
		Date:  "Mar 17, 2024",
		Total: "150.00 SQT",
		One:   chart.Amount{Name: "Staking", Amount: "50.00 SQT", Percentage: "33.33%"},
		Two:   chart.Amount{Name: "Delegation", Amount: "100.00 SQT", Percentage: "66.67%"},
	}, decode[chart.Tooltip](t, resp))

	resp = env.do(t, http.MethodGet, "/v1/stake-chart/tooltip?index=4&format=html", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body bytes.Buffer
	_, err := body.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "Mar 17, 2024")
	assert.Contains(t, body.String(), "66.67%")

	// the last axis point lies in the future and has no tooltip
	resp = env.do(t, http.MethodGet, "/v1/stake-chart/tooltip?index=5", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/v1/stake-chart/tooltip", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestViews(t *testing.T) {
	env := newTestEnv(t)
	env.expectStakes(2)

	resp := env.do(t, http.MethodPost, "/v1/views", OpenViewRequest{})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	opened := decode[services.ViewState](t, resp)
	assert.NotEmpty(t, opened.ID)

	var state services.ViewState
	require.Eventually(t, func() bool {
		resp := env.do(t, http.MethodGet, "/v1/views/"+opened.ID, nil)
		state = decode[services.ViewState](t, resp)
		return state.Status == "DATA"
	}, 5*time.Second, 10*time.Millisecond)
	require.NotNil(t, state.Data)

	resp = env.do(t, http.MethodPut, "/v1/views/"+opened.ID+"/range", SetRangeRequest{Range: "ly"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[services.ViewState](t, resp)
	assert.Equal(t, era.LastYear, updated.Range)
	assert.Equal(t, uint64(2), updated.Generation)
	env.svc.Views.Wait()

	resp = env.do(t, http.MethodPut, "/v1/views/"+opened.ID+"/range", SetRangeRequest{Range: "forever"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/v1/views/"+opened.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/v1/views/"+opened.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = env.do(t, http.MethodPost, "/v1/views/"+opened.ID+"/refresh", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOpenView_InvalidBody(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/v1/views", map[string]any{"unknown": true})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/v1/views", OpenViewRequest{DelegatedToOthers: true})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetGeoInformation(t *testing.T) {
	env := newTestEnv(t)
	env.geo.On("GetGeoInformation", mock.Anything, []string{"0xa", "0xb"}).
		Return([]geoclient.GeoInformation{{Indexer: "0xa", City: "Berlin"}, {Indexer: "0xb"}}, nil).Once()
	env.geo.On("GetGeoInformation", mock.Anything, []string{}).Return([]geoclient.GeoInformation{}, nil).Once()

	resp := env.do(t, http.MethodGet, "/v1/geo?indexers=0xa,%20,0xb", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	info := decode[[]geoclient.GeoInformation](t, resp)
	assert.Len(t, info, 2)
	assert.Equal(t, "Berlin", info[0].City)

	resp = env.do(t, http.MethodGet, "/v1/geo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", strings.TrimSpace(readBody(t, resp)))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body bytes.Buffer
	_, err := body.ReadFrom(resp.Body)
	require.NoError(t, err)
	return body.String()
}

func TestHostingPlans(t *testing.T) {
	env := newTestEnv(t)
	deployment := testutil.RandomDeployment()
	env.host.On("GetProjectIndexers", mock.Anything, "42", deployment).
		Return([]consumerhost.ProjectIndexer{{Indexer: "0xa", Price: "1000000000000000", MaxTime: 86400}}, nil)
	env.host.On("GetChannelLimit", mock.Anything).Return(nil, errors.New("down"))
	env.host.On("ListHostingPlans", mock.Anything, checksumAccount).Return([]consumerhost.HostingPlan{}, nil)
	env.host.On("CreateHostingPlan", mock.Anything, mock.Anything).Return(&consumerhost.HostingPlan{ID: 5}, nil).Once()
	env.host.On("UpdateHostingPlan", mock.Anything, mock.MatchedBy(func(p consumerhost.HostingPlanParams) bool {
		return p.ID == "5"
	})).Return(&consumerhost.HostingPlan{ID: 5, Maximum: 4}, nil).Once()

	resp := env.do(t, http.MethodGet, "/v1/hosting-plans/matched?project_id=42&deployment="+deployment+"&price=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[services.MatchedIndexers](t, resp).Count)

	resp = env.do(t, http.MethodGet, "/v1/hosting-plans/channel-limit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, services.DefaultChannelLimits, decode[services.ChannelLimits](t, resp))

	resp = env.do(t, http.MethodGet, "/v1/hosting-plans?account="+lowerAccount, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", strings.TrimSpace(readBody(t, resp)))

	plan := HostingPlanRequest{Account: lowerAccount, ProjectID: "42", Deployment: deployment, Price: "2", Maximum: 3}
	resp = env.do(t, http.MethodPost, "/v1/hosting-plans", plan)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, int64(5), decode[consumerhost.HostingPlan](t, resp).ID)

	plan.Maximum = 4
	resp = env.do(t, http.MethodPut, "/v1/hosting-plans/5", plan)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(4), decode[consumerhost.HostingPlan](t, resp).Maximum)

	resp = env.do(t, http.MethodGet, "/v1/hosting-plans", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
