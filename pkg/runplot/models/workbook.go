package models

// ChartSeries represents series metadata for a workbook chart.
type ChartSeries struct {
	// Name is the cached series display name, if the workbook stores one.
	Name string `json:"name,omitempty"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for X axis values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for Y axis values.
	YRange string `json:"y_range,omitempty"`
}

// WorkbookChart represents a chart found in an exported workbook.
type WorkbookChart struct {
	// Part is the chart's path inside the workbook archive.
	Part string `json:"part"`
	// ChartType is the chart type (e.g., XYScatter, Line).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// LogBases lists the log base of every log-scaled axis.
	LogBases []float64 `json:"log_bases,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
}
