package workbook

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/ukaji3/runplot-go/pkg/runplot/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":    "Line",
	"barChart":     "Bar",
	"areaChart":    "Area",
	"scatterChart": "XYScatter",
	"bubbleChart":  "Bubble",
}

// Inspect lists the charts stored in an xlsx file, ordered by part name.
func Inspect(xlsxPath string) ([]models.WorkbookChart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, errors.Wrapf(err, "workbook: could not open %s", xlsxPath)
	}
	defer r.Close()

	var charts []models.WorkbookChart
	for _, zf := range r.File {
		if !strings.HasPrefix(zf.Name, "xl/charts/chart") || !strings.HasSuffix(zf.Name, ".xml") {
			continue
		}
		data, err := readZipFile(zf)
		if err != nil {
			return nil, errors.Wrapf(err, "workbook: could not read %s", zf.Name)
		}
		chart, err := parseChartXML(data)
		if err != nil {
			return nil, errors.Wrapf(err, "workbook: could not parse %s", zf.Name)
		}
		chart.Part = zf.Name
		charts = append(charts, chart)
	}

	sort.Slice(charts, func(i, j int) bool { return charts[i].Part < charts[j].Part })
	return charts, nil
}

func readZipFile(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseChartXML extracts type, title, axis log bases and series references
// from a chart part.
func parseChartXML(data []byte) (models.WorkbookChart, error) {
	var chart models.WorkbookChart
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var stack []string

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return chart, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			switch local := t.Name.Local; {
			case ChartTypeMap[local] != "" && chart.ChartType == "":
				chart.ChartType = ChartTypeMap[local]
			case local == "ser":
				chart.Series = append(chart.Series, models.ChartSeries{})
			case local == "logBase":
				for _, attr := range t.Attr {
					if attr.Name.Local != "val" {
						continue
					}
					if v, err := strconv.ParseFloat(attr.Value, 64); err == nil {
						chart.LogBases = append(chart.LogBases, v)
					}
				}
			}
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" || len(stack) == 0 {
				continue
			}
			applyText(&chart, stack, text)
		}
	}

	if chart.ChartType == "" {
		chart.ChartType = "unknown"
	}
	return chart, nil
}

// applyText stores text found at the element path stack.
func applyText(chart *models.WorkbookChart, stack []string, text string) {
	leaf := stack[len(stack)-1]

	if inside(stack, "ser") && len(chart.Series) > 0 {
		s := &chart.Series[len(chart.Series)-1]
		switch {
		case inside(stack, "tx") && leaf == "f":
			s.NameRange = text
		case inside(stack, "tx") && leaf == "v":
			s.Name = text
		case (inside(stack, "cat") || inside(stack, "xVal")) && leaf == "f":
			s.XRange = text
		case (inside(stack, "val") || inside(stack, "yVal")) && leaf == "f":
			s.YRange = text
		}
		return
	}

	if leaf == "t" && inside(stack, "title") && !inside(stack, "valAx") && !inside(stack, "catAx") {
		chart.Title += text
	}
}

func inside(stack []string, name string) bool {
	for _, s := range stack {
		if s == name {
			return true
		}
	}
	return false
}
