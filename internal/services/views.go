package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/leopardracer/network-app/internal/chart"
	"github.com/leopardracer/network-app/internal/era"
	"github.com/leopardracer/network-app/internal/observability/metrics"
	"github.com/leopardracer/network-app/internal/types"
)

type Builder interface {
	Build(ctx context.Context, req ChartRequest) (*chart.Data, *types.Error)
}

type ViewError struct {
	Kind    types.ErrorKind `json:"kind"`
	Message string          `json:"message"`
}

// ViewState is a snapshot of a chart view.
type ViewState struct {
	ID                string           `json:"id"`
	Account           string           `json:"account,omitempty"`
	DelegatedToOthers bool             `json:"delegatedToOthers"`
	Range             era.Range        `json:"range"`
	Status            types.ViewStatus `json:"status"`
	// Refreshing is set while a newer result is being built for a view that already
	// has one.
	Refreshing bool        `json:"refreshing"`
	Data       *chart.Data `json:"data,omitempty"`
	Error      *ViewError  `json:"error,omitempty"`
	Generation uint64      `json:"generation"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

type view struct {
	state ViewState
	// latest is the newest ticket handed out; only its result may be committed.
	latest uint64
	cancel context.CancelFunc
}

// Views keeps the open chart views and refreshes them in the background. Every
// refresh takes a generation ticket and its result is dropped if a newer refresh
// started in the meantime.
type Views struct {
	builder Builder

	mu    sync.Mutex
	views map[string]*view
	// closed is set once Shutdown starts; no refresh may start afterwards.
	closed bool

	baseCtx context.Context
	stop    context.CancelFunc
	wg      sync.WaitGroup
}

func NewViews(builder Builder) *Views {
	ctx, cancel := context.WithCancel(context.Background())
	return &Views{
		builder: builder,
		views:   make(map[string]*view),
		baseCtx: ctx,
		stop:    cancel,
	}
}

var (
	ErrViewNotFound = errors.New("view not found")
	ErrViewsClosed  = errors.New("chart views are shutting down")
)

func closedError() *types.Error {
	return types.NewError(http.StatusServiceUnavailable, types.InternalServiceError, ErrViewsClosed)
}

// Open registers a view over the last month and starts its first refresh.
func (v *Views) Open(ctx context.Context, account string, delegatedToOthers bool) (ViewState, *types.Error) {
	if delegatedToOthers && account == "" {
		return ViewState{}, types.NewBadRequestError(errors.New("an account is required to chart delegation to others"))
	}

	id := uuid.New().String()
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ViewState{}, closedError()
	}
	v.views[id] = &view{
		state: ViewState{
			ID:                id,
			Account:           account,
			DelegatedToOthers: delegatedToOthers,
			Range:             era.LastMonth,
			Status:            types.ViewLoading,
			UpdatedAt:         time.Now(),
		},
	}
	metrics.RecordOpenViews(len(v.views))
	v.mu.Unlock()

	log.Ctx(ctx).Debug().Str("view_id", id).Str("account", account).Msg("opened chart view")

	return v.Refresh(ctx, id)
}

func (v *Views) Get(id string) (ViewState, *types.Error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	vw, ok := v.views[id]
	if !ok {
		return ViewState{}, types.NewNotFoundError(fmt.Errorf("%w: %s", ErrViewNotFound, id))
	}
	return vw.state, nil
}

// SetRange changes the lookback of a view and refreshes it.
func (v *Views) SetRange(ctx context.Context, id string, rng era.Range) (ViewState, *types.Error) {
	v.mu.Lock()
	vw, ok := v.views[id]
	if !ok {
		v.mu.Unlock()
		return ViewState{}, types.NewNotFoundError(fmt.Errorf("%w: %s", ErrViewNotFound, id))
	}
	vw.state.Range = rng
	v.mu.Unlock()

	return v.Refresh(ctx, id)
}

// Refresh starts building the view again and returns the state with the new ticket.
// Any refresh still running for the view is cancelled and its result discarded.
func (v *Views) Refresh(ctx context.Context, id string) (ViewState, *types.Error) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ViewState{}, closedError()
	}
	vw, ok := v.views[id]
	if !ok {
		v.mu.Unlock()
		return ViewState{}, types.NewNotFoundError(fmt.Errorf("%w: %s", ErrViewNotFound, id))
	}

	if vw.cancel != nil {
		vw.cancel()
	}
	vw.latest++
	ticket := vw.latest
	vw.state.Generation = ticket
	vw.state.Refreshing = vw.state.Status != types.ViewLoading

	req := ChartRequest{
		Account:           vw.state.Account,
		Range:             vw.state.Range,
		DelegatedToOthers: vw.state.DelegatedToOthers,
	}

	// the build outlives the caller's request, only its logger is kept
	buildCtx, cancel := context.WithCancel(log.Ctx(ctx).WithContext(v.baseCtx))
	vw.cancel = cancel
	state := vw.state

	v.wg.Add(1)
	v.mu.Unlock()

	go func() {
		defer v.wg.Done()
		defer cancel()

		data, err := v.builder.Build(buildCtx, req)
		v.commit(buildCtx, id, ticket, data, err)
	}()

	return state, nil
}

// RefreshAll refreshes every open view.
func (v *Views) RefreshAll(ctx context.Context) {
	v.mu.Lock()
	ids := make([]string, 0, len(v.views))
	for id := range v.views {
		ids = append(ids, id)
	}
	v.mu.Unlock()

	for _, id := range ids {
		// a view closed meanwhile is not an error here
		_, _ = v.Refresh(ctx, id)
	}
}

func (v *Views) Close(ctx context.Context, id string) *types.Error {
	v.mu.Lock()
	defer v.mu.Unlock()

	vw, ok := v.views[id]
	if !ok {
		return types.NewNotFoundError(fmt.Errorf("%w: %s", ErrViewNotFound, id))
	}
	if vw.cancel != nil {
		vw.cancel()
	}
	delete(v.views, id)
	metrics.RecordOpenViews(len(v.views))

	log.Ctx(ctx).Debug().Str("view_id", id).Msg("closed chart view")
	return nil
}

// Wait blocks until no refresh is running.
func (v *Views) Wait() {
	v.wg.Wait()
}

// Shutdown cancels every running refresh and waits for them to return.
func (v *Views) Shutdown() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()

	v.stop()
	v.wg.Wait()
}

func (v *Views) commit(ctx context.Context, id string, ticket uint64, data *chart.Data, err *types.Error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	vw, ok := v.views[id]
	if !ok {
		return
	}
	if ticket != vw.latest {
		metrics.IncStaleResponses()
		log.Ctx(ctx).Debug().
			Str("view_id", id).
			Uint64("ticket", ticket).
			Uint64("latest", vw.latest).
			Msg("dropping stale chart result")
		return
	}

	vw.state.Refreshing = false
	vw.state.UpdatedAt = time.Now()
	switch {
	case err == nil:
		vw.state.Status = types.ViewData
		vw.state.Data = data
		vw.state.Error = nil
	case errors.Is(err, ErrNoData):
		vw.state.Status = types.ViewEmpty
		vw.state.Data = nil
		vw.state.Error = nil
	default:
		vw.state.Status = types.ViewError
		vw.state.Data = nil
		vw.state.Error = &ViewError{Kind: types.ErrorKindOf(err), Message: err.Error()}
		log.Ctx(ctx).Warn().Err(err).Str("view_id", id).Msg("failed to refresh chart view")
	}
}
