package models

// ChartSeries is the raw stock-by-product series the dashboard charts.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// ChartPayload is what a renderer hands the frontend: either a ready-made
// Chart.js configuration or a self-contained SVG drawing.
type ChartPayload struct {
	Kind   string       `json:"kind"`
	Config *ChartConfig `json:"config,omitempty"`
	SVG    string       `json:"svg,omitempty"`
}

// ChartConfig mirrors the Chart.js constructor argument.
type ChartConfig struct {
	Type    string          `json:"type"`
	Data    ChartConfigData `json:"data"`
	Options ChartOptions    `json:"options"`
}

type ChartConfigData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderRadius    int       `json:"borderRadius"`
}

type ChartOptions struct {
	Responsive          bool         `json:"responsive"`
	MaintainAspectRatio bool         `json:"maintainAspectRatio"`
	Plugins             ChartPlugins `json:"plugins"`
	Scales              ChartScales  `json:"scales"`
}

type ChartPlugins struct {
	Legend ChartLegend `json:"legend"`
}

type ChartLegend struct {
	Display bool `json:"display"`
}

type ChartScales struct {
	Y ChartAxis `json:"y"`
}

type ChartAxis struct {
	BeginAtZero bool `json:"beginAtZero"`
}
