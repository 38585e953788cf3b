// Package chart reshapes per-teacher attribute counts into Google Charts
// data tables.
package chart

import (
	"errors"
	"fmt"
)

// ErrUnknownAttribute is returned by Build when the filter names an attribute
// that has no column.
var ErrUnknownAttribute = errors.New("unknown attribute")

const (
	// TypeColumn is the only chart type produced.
	TypeColumn = "ColumnChart"

	headerLabel = "Teacher_Name"
	allTitle    = "Attributes distribution for all teachers"
)

// Count is the number of a teacher's students carrying an attribute.
type Count struct {
	Teacher   string
	Attribute string
	Students  int64
}

// Chart is the payload consumed by the front-end chart component.
type Chart struct {
	Data      [][]any `json:"data"`
	ChartType string  `json:"chartType"`
	Options   Options `json:"options"`
}

// Options mirrors the subset of Google Charts options the UI relies on.
type Options struct {
	ChartArea ChartArea `json:"chartArea"`
	VAxis     Axis      `json:"vAxis"`
	Legend    Legend    `json:"legend"`
	Title     string    `json:"title"`
}

type ChartArea struct {
	Left   int    `json:"left"`
	Top    int    `json:"top"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

type Axis struct {
	Title string `json:"title"`
}

type Legend struct {
	Position string `json:"position"`
	MaxLines int    `json:"maxLines"`
}

func defaultOptions(title string) Options {
	return Options{
		ChartArea: ChartArea{Left: 100, Top: 100, Width: "90%", Height: "75%"},
		VAxis:     Axis{Title: "Number of Students"},
		Legend:    Legend{Position: "bottom", MaxLines: 2},
		Title:     title,
	}
}

// Matrix builds the dense teacher × attribute table: a header row
// ["Teacher_Name", attributes...] followed by one row per distinct teacher.
// Every cell starts at zero and is overwritten by the matching count; counts
// for teachers or attributes outside the given sets are dropped. Row and
// column order follow teachers and attributes, first occurrence winning for
// repeated teacher names.
func Matrix(teachers, attributes []string, counts []Count) [][]any {
	col := make(map[string]int, len(attributes))
	for i, a := range attributes {
		if _, ok := col[a]; !ok {
			col[a] = i
		}
	}

	row := make(map[string]int, len(teachers))
	var cells [][]int64
	var order []string
	for _, t := range teachers {
		if _, ok := row[t]; ok {
			continue
		}
		row[t] = len(order)
		order = append(order, t)
		cells = append(cells, make([]int64, len(attributes)))
	}

	for _, c := range counts {
		r, ok := row[c.Teacher]
		if !ok {
			continue
		}
		k, ok := col[c.Attribute]
		if !ok {
			continue
		}
		cells[r][k] = c.Students
	}

	header := make([]any, 0, len(attributes)+1)
	header = append(header, headerLabel)
	for _, a := range attributes {
		header = append(header, a)
	}

	data := make([][]any, 0, len(order)+1)
	data = append(data, header)
	for i, t := range order {
		r := make([]any, 0, len(attributes)+1)
		r = append(r, t)
		for _, n := range cells[i] {
			r = append(r, n)
		}
		data = append(data, r)
	}
	return data
}

// Project keeps the label column and column idx of every row.
func Project(data [][]any, idx int) [][]any {
	out := make([][]any, len(data))
	for i, r := range data {
		out[i] = []any{r[0], r[idx]}
	}
	return out
}

// Build produces the chart for all attributes, or for the single attribute
// named by filter when it is non-empty.
func Build(teachers, attributes []string, counts []Count, filter string) (*Chart, error) {
	data := Matrix(teachers, attributes, counts)
	if filter == "" {
		return &Chart{Data: data, ChartType: TypeColumn, Options: defaultOptions(allTitle)}, nil
	}

	idx := -1
	for i, a := range attributes {
		if a == filter {
			idx = i + 1
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, filter)
	}
	return &Chart{
		Data:      Project(data, idx),
		ChartType: TypeColumn,
		Options:   defaultOptions("Attributes distribution for " + filter),
	}, nil
}
