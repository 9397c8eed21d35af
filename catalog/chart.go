package catalog

import (
	"fmt"
	"strings"

	"superapp/models"
)

// ChartRenderer turns the stock series into something the dashboard can draw.
// The implementation is picked once at startup and never re-checked per
// render.
type ChartRenderer interface {
	Render(series models.ChartSeries) models.ChartPayload
}

// NewChartRenderer selects the renderer by name; anything but "fallback"
// means a Chart.js-capable frontend is assumed.
func NewChartRenderer(name string) ChartRenderer {
	if name == "fallback" {
		return NewFallbackRenderer()
	}
	return ChartJSRenderer{}
}

// ChartJSRenderer delegates the drawing: it emits the configuration object the
// frontend passes straight into the Chart.js constructor.
type ChartJSRenderer struct{}

func (ChartJSRenderer) Render(series models.ChartSeries) models.ChartPayload {
	return models.ChartPayload{
		Kind: "chartjs",
		Config: &models.ChartConfig{
			Type: "bar",
			Data: models.ChartConfigData{
				Labels: series.Labels,
				Datasets: []models.ChartDataset{{
					Label:           "Stock",
					Data:            series.Values,
					BackgroundColor: "rgba(59,130,246,0.9)",
					BorderRadius:    6,
				}},
			},
			Options: models.ChartOptions{
				Responsive:          true,
				MaintainAspectRatio: false,
				Plugins:             models.ChartPlugins{Legend: models.ChartLegend{Display: false}},
				Scales:              models.ChartScales{Y: models.ChartAxis{BeginAtZero: true}},
			},
		},
	}
}

// FallbackRenderer draws the bar chart itself, as an SVG: axis lines, bars
// scaled to the maximum value, the value above each bar and a truncated name
// below it.
type FallbackRenderer struct {
	Width  int
	Height int
}

func NewFallbackRenderer() *FallbackRenderer {
	return &FallbackRenderer{Width: 640, Height: 300}
}

func (r *FallbackRenderer) Render(series models.ChartSeries) models.ChartPayload {
	w, h := r.Width, r.Height
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, w, h, w, h)

	if len(series.Values) == 0 {
		b.WriteString(`<text x="20" y="30" font-size="16" fill="#9ca3af">No data to display</text>`)
		b.WriteString(`</svg>`)
		return models.ChartPayload{Kind: "svg", SVG: b.String()}
	}

	padding := 40.0
	chartW := float64(w) - padding*2
	chartH := float64(h) - padding*2

	maxVal := series.Values[0]
	for _, v := range series.Values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	slot := chartW / float64(len(series.Values))
	barWidth := slot * 0.6
	gap := slot * 0.4

	fmt.Fprintf(&b, `<path d="M%g %g L%g %g L%g %g" stroke="#e5e7eb" stroke-width="1" fill="none"/>`,
		padding, padding, padding, padding+chartH, padding+chartW, padding+chartH)

	for i, val := range series.Values {
		barH := val / maxVal * (chartH - 20)
		x := padding + float64(i)*slot + gap/2
		y := padding + (chartH - barH)

		fmt.Fprintf(&b, `<rect x="%g" y="%g" width="%g" height="%g" rx="6" fill="#3b82f6"/>`, x, y, barWidth, barH)
		fmt.Fprintf(&b, `<text x="%g" y="%g" font-size="12" fill="#111827" text-anchor="middle">%s</text>`,
			x+barWidth/2, y-8, formatAmount(val))

		label := ""
		if i < len(series.Labels) {
			label = truncateLabel(series.Labels[i])
		}
		fmt.Fprintf(&b, `<text x="%g" y="%g" font-size="12" fill="#6b7280" text-anchor="middle">%s</text>`,
			x+barWidth/2, padding+chartH+16, escapeText(label))
	}

	b.WriteString(`</svg>`)
	return models.ChartPayload{Kind: "svg", SVG: b.String()}
}

// truncateLabel shortens names past 12 characters to 11 plus an ellipsis.
func truncateLabel(s string) string {
	runes := []rune(s)
	if len(runes) > 12 {
		return string(runes[:11]) + "…"
	}
	return s
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
