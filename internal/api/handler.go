package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/leopardracer/network-app/internal/chart"
	"github.com/leopardracer/network-app/internal/services"
	"github.com/leopardracer/network-app/internal/types"
)

type Handler struct {
	svc *services.Service
}

func NewHandler(svc *services.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	return ok(map[string]string{"status": "ok"})
}

// GetStakeChart answers the chart as JSON, or as a PNG image with format=png.
func (h *Handler) GetStakeChart(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	req, err := chartRequest(r)
	if err != nil {
		return errorResponse(err)
	}

	data, err := h.svc.Charts.Build(r.Context(), req)
	if err != nil {
		return errorResponse(err)
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		return ok(data)
	case "png":
		var buf bytes.Buffer
		if err := chart.RenderPNG(&buf, data); err != nil {
			if errors.Is(err, chart.ErrNotEnoughPoints) {
				return errorResponse(types.NewNotFoundError(err))
			}
			return errorResponse(toError(fmt.Errorf("failed to render chart: %w", err)))
		}
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(contentTypeHeader, "image/png")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(buf.Bytes())
		}
	default:
		return errorResponse(types.NewBadRequestError(fmt.Errorf("unsupported format %q", format)))
	}
}

// GetStakeChartTooltip answers the tooltip of one chart point, as JSON or with
// format=html as the rendered markup.
func (h *Handler) GetStakeChartTooltip(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	req, err := chartRequest(r)
	if err != nil {
		return errorResponse(err)
	}
	index, convErr := strconv.Atoi(r.URL.Query().Get("index"))
	if convErr != nil {
		return errorResponse(types.NewBadRequestError(fmt.Errorf("invalid index %q", r.URL.Query().Get("index"))))
	}

	data, err := h.svc.Charts.Build(r.Context(), req)
	if err != nil {
		return errorResponse(err)
	}

	tooltip, tooltipErr := data.TooltipAt(index)
	if tooltipErr != nil {
		return errorResponse(types.NewBadRequestError(tooltipErr))
	}

	if r.URL.Query().Get("format") != "html" {
		return ok(tooltip)
	}
	markup, renderErr := tooltip.HTML()
	if renderErr != nil {
		return errorResponse(toError(renderErr))
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(contentTypeHeader, "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(markup))
	}
}

type OpenViewRequest struct {
	Account           string `json:"account"`
	DelegatedToOthers bool   `json:"delegatedToOthers"`
}

type SetRangeRequest struct {
	Range string `json:"range"`
}

func (h *Handler) OpenView(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	var body OpenViewRequest
	if err := decodeBody(r, &body); err != nil {
		return errorResponse(err)
	}
	account, err := parseAccount(body.Account)
	if err != nil {
		return errorResponse(err)
	}

	state, err := h.svc.Views.Open(r.Context(), account, body.DelegatedToOthers)
	if err != nil {
		return errorResponse(err)
	}
	return jsonResponse(http.StatusCreated, state)
}

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	state, err := h.svc.Views.Get(chi.URLParam(r, "id"))
	if err != nil {
		return errorResponse(err)
	}
	return ok(state)
}

func (h *Handler) SetViewRange(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	var body SetRangeRequest
	if err := decodeBody(r, &body); err != nil {
		return errorResponse(err)
	}
	rng, err := parseRange(body.Range)
	if err != nil {
		return errorResponse(err)
	}

	state, err := h.svc.Views.SetRange(r.Context(), chi.URLParam(r, "id"), rng)
	if err != nil {
		return errorResponse(err)
	}
	return ok(state)
}

func (h *Handler) RefreshView(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	state, err := h.svc.Views.Refresh(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return errorResponse(err)
	}
	return ok(state)
}

func (h *Handler) CloseView(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	if err := h.svc.Views.Close(r.Context(), chi.URLParam(r, "id")); err != nil {
		return errorResponse(err)
	}
	return noContent()
}

func (h *Handler) GetGeoInformation(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	info, err := h.svc.Geo.GetGeoInformation(r.Context(), splitList(r.URL.Query().Get("indexers")))
	if err != nil {
		return errorResponse(err)
	}
	return ok(info)
}

type HostingPlanRequest struct {
	Account    string `json:"account"`
	ProjectID  string `json:"projectId"`
	Deployment string `json:"deployment"`
	// Price in whole tokens per thousand requests.
	Price   string `json:"price"`
	Maximum int64  `json:"maximum"`
}

func (req HostingPlanRequest) toPlanRequest() (services.PlanRequest, *types.Error) {
	account, err := parseAccount(req.Account)
	if err != nil {
		return services.PlanRequest{}, err
	}
	return services.PlanRequest{
		Account:    account,
		ProjectID:  req.ProjectID,
		Deployment: req.Deployment,
		Price:      req.Price,
		Maximum:    req.Maximum,
	}, nil
}

func (h *Handler) GetMatchedIndexers(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	q := r.URL.Query()
	matched, err := h.svc.HostingPlans.MatchedIndexers(r.Context(), q.Get("project_id"), q.Get("deployment"), q.Get("price"))
	if err != nil {
		return errorResponse(err)
	}
	return ok(matched)
}

func (h *Handler) GetChannelLimits(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	return ok(h.svc.HostingPlans.ChannelLimits(r.Context()))
}

func (h *Handler) ListHostingPlans(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	account, err := parseAccount(r.URL.Query().Get("account"))
	if err != nil {
		return errorResponse(err)
	}
	plans, err := h.svc.HostingPlans.ListHostingPlans(r.Context(), account)
	if err != nil {
		return errorResponse(err)
	}
	return ok(plans)
}

// CreateHostingPlan answers 201 with the new plan, or 200 with the plan the account
// already has for the deployment.
func (h *Handler) CreateHostingPlan(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	var body HostingPlanRequest
	if err := decodeBody(r, &body); err != nil {
		return errorResponse(err)
	}
	req, err := body.toPlanRequest()
	if err != nil {
		return errorResponse(err)
	}

	plan, created, err := h.svc.HostingPlans.CreateHostingPlan(r.Context(), req)
	if err != nil {
		return errorResponse(err)
	}
	if created {
		return jsonResponse(http.StatusCreated, plan)
	}
	return ok(plan)
}

func (h *Handler) UpdateHostingPlan(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
	var body HostingPlanRequest
	if err := decodeBody(r, &body); err != nil {
		return errorResponse(err)
	}
	req, err := body.toPlanRequest()
	if err != nil {
		return errorResponse(err)
	}

	plan, err := h.svc.HostingPlans.UpdateHostingPlan(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		return errorResponse(err)
	}
	return ok(plan)
}
