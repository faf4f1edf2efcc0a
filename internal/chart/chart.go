package chart

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/leopardracer/network-app/internal/era"
	"github.com/leopardracer/network-app/internal/series"
)

const (
	DefaultTitle  = "Network Staking and Delegation"
	DefaultToken  = "SQT"
	TooltipLayout = "Jan 2, 2006"
)

var DefaultDimensions = [2]string{"Staking", "Delegation"}

var ErrIndexOutOfRange = errors.New("index out of range")

// Data is the payload of the line chart: the axis, the two plotted series and the
// raw values used by the tooltip.
type Data struct {
	Title      string      `json:"title"`
	Dimensions [2]string   `json:"dimensions"`
	Token      string      `json:"token"`
	Labels     []string    `json:"labels"`
	Dates      []time.Time `json:"dates"`
	Series     [][]float64 `json:"series"`
	Raw        series.Plot `json:"raw"`
}

type Options struct {
	Title      string
	Dimensions [2]string
	Token      string
}

func New(window era.Window, plot series.Plot, opts Options) *Data {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Dimensions[0] == "" || opts.Dimensions[1] == "" {
		opts.Dimensions = DefaultDimensions
	}
	if opts.Token == "" {
		opts.Token = DefaultToken
	}

	return &Data{
		Title:      opts.Title,
		Dimensions: opts.Dimensions,
		Token:      opts.Token,
		Labels:     window.Labels,
		Dates:      window.Dates,
		Series:     [][]float64{plot.One, plot.Two},
		Raw:        plot,
	}
}

type Amount struct {
	Name       string `json:"name"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
}

type Tooltip struct {
	Date  string `json:"date"`
	Total string `json:"total"`
	One   Amount `json:"one"`
	Two   Amount `json:"two"`
}

// Tooltip builds the hover content of the point at index.
func (d *Data) Tooltip(index int, date time.Time) (Tooltip, error) {
	if index < 0 || index >= len(d.Raw.Total) || index >= len(d.Raw.One) || index >= len(d.Raw.Two) {
		return Tooltip{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	one, two, total := d.Raw.One[index], d.Raw.Two[index], d.Raw.Total[index]
	return Tooltip{
		Date:  date.Format(TooltipLayout),
		Total: fmt.Sprintf("%s %s", FormatNumber(total), d.Token),
		One: Amount{
			Name:       d.Dimensions[0],
			Amount:     fmt.Sprintf("%s %s", FormatNumber(one), d.Token),
			Percentage: ToPercentage(one, total),
		},
		Two: Amount{
			Name:       d.Dimensions[1],
			Amount:     fmt.Sprintf("%s %s", FormatNumber(two), d.Token),
			Percentage: ToPercentage(two, total),
		},
	}, nil
}

// TooltipAt is Tooltip using the axis date of index.
func (d *Data) TooltipAt(index int) (Tooltip, error) {
	if index < 0 || index >= len(d.Dates) {
		return Tooltip{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return d.Tooltip(index, d.Dates[index])
}

var tooltipTemplate = template.Must(template.New("tooltip").Parse(`<div class="col-flex" style="width: 340px">
  <span style="font-size:12px;">{{.Date}}</span>
  <div class="flex-between" style="margin-top: 8px;">
    <span style="font-size:12px;">Total</span>
    <span style="font-size:12px;">{{.Total}}</span>
  </div>
  <div class="flex-between" style="margin: 8px 0;">
    <span style="font-size:12px;">{{.One.Name}}</span>
    <span style="font-size:12px;">{{.One.Amount}} ({{.One.Percentage}})</span>
  </div>
  <div class="flex-between">
    <span style="font-size:12px;">{{.Two.Name}}</span>
    <span style="font-size:12px;">{{.Two.Amount}} ({{.Two.Percentage}})</span>
  </div>
</div>`))

// HTML renders the tooltip markup consumed by the charting surface.
func (t Tooltip) HTML() (string, error) {
	var buf bytes.Buffer
	if err := tooltipTemplate.Execute(&buf, t); err != nil {
		return "", err
	}
	return buf.String(), nil
}
