package domain

import (
	alertdomain "alert-dashboard-service/internal/alerts/core/domain"
)

type ChartType string

const (
	ChartBar      ChartType = "bar"
	ChartPie      ChartType = "pie"
	ChartLine     ChartType = "line"
	ChartDoughnut ChartType = "doughnut"
)

// ChartTypes lists the dashboard slots in display order.
func ChartTypes() []ChartType {
	return []ChartType{ChartBar, ChartPie, ChartLine, ChartDoughnut}
}

type Dataset struct {
	Label           string   `json:"label"`
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
	BorderColor     []string `json:"borderColor"`
	BorderWidth     int      `json:"borderWidth"`
}

// ChartData is the {labels, datasets} schema shared by every chart type.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type ChartOptions struct {
	Responsive bool `json:"responsive"`
}

// Palette holds five colours; the chart library cycles them past five labels.
type Palette struct {
	Background []string
	Border     []string
}

var darkColors = []string{"#4CAF50", "#2196F3", "#FFC107", "#FF5722", "#9C27B0"}

var (
	LightPalette = Palette{
		Background: []string{
			"rgba(255, 99, 132, 0.5)",
			"rgba(54, 162, 235, 0.5)",
			"rgba(255, 206, 86, 0.5)",
			"rgba(75, 192, 192, 0.5)",
			"rgba(153, 102, 255, 0.5)",
		},
		Border: []string{
			"rgba(255, 99, 132, 1)",
			"rgba(54, 162, 235, 1)",
			"rgba(255, 206, 86, 1)",
			"rgba(75, 192, 192, 1)",
			"rgba(153, 102, 255, 1)",
		},
	}
	DarkPalette = Palette{
		Background: darkColors,
		Border:     darkColors,
	}
)

func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// DatasetLabel is the legend title for a grouping key.
func DatasetLabel(key alertdomain.GroupKey) string {
	switch key {
	case alertdomain.GroupByCategory:
		return "Category Count"
	case alertdomain.GroupBySeverity:
		return "Severity Count"
	default:
		return "Events Over Time"
	}
}

// BuildChartData projects an aggregation into the chart schema.
func BuildChartData(res *alertdomain.AggregationResult, dark bool) ChartData {
	p := PaletteFor(dark)

	return ChartData{
		Labels: res.Labels(),
		Datasets: []Dataset{{
			Label:           DatasetLabel(res.Key()),
			Data:            res.Counts(),
			BackgroundColor: cloneStrings(p.Background),
			BorderColor:     cloneStrings(p.Border),
			BorderWidth:     1,
		}},
	}
}

func (d ChartData) clone() ChartData {
	out := ChartData{
		Labels:   cloneStrings(d.Labels),
		Datasets: make([]Dataset, len(d.Datasets)),
	}
	for i, ds := range d.Datasets {
		ds.Data = append([]int(nil), ds.Data...)
		ds.BackgroundColor = cloneStrings(ds.BackgroundColor)
		ds.BorderColor = cloneStrings(ds.BorderColor)
		out.Datasets[i] = ds
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
