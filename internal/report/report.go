// Package report runs the fixed read-only queries behind the chart API.
package report

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eargollo/plotify/internal/chart"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Attribute is one distinct student attribute.
type Attribute struct {
	Name string `json:"name"`
}

const (
	attributesQuery = `SELECT DISTINCT attribute FROM student_attribute`

	teachersQuery = `SELECT teacher_name FROM class`

	countsQuery = `
		SELECT class.teacher_name, student_attribute.attribute, COUNT(student_attribute.attribute)
		FROM student
		JOIN class ON class.id = student.class_id
		JOIN student_attribute ON student.name = student_attribute.student_name
		GROUP BY student_attribute.attribute, class.teacher_name
		ORDER BY class.teacher_name`
)

// Attributes returns every distinct attribute in store order.
func Attributes(ctx context.Context, q Querier) ([]Attribute, error) {
	names, err := queryStrings(ctx, q, attributesQuery)
	if err != nil {
		return nil, fmt.Errorf("list attributes: %w", err)
	}
	attrs := make([]Attribute, len(names))
	for i, n := range names {
		attrs[i] = Attribute{Name: n}
	}
	return attrs, nil
}

// Teachers returns the teacher name of every class, in store order. Names
// are not deduplicated.
func Teachers(ctx context.Context, q Querier) ([]string, error) {
	names, err := queryStrings(ctx, q, teachersQuery)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return names, nil
}

// Counts returns the number of students per (teacher, attribute) pair.
// Classes sharing a teacher name are merged by the grouping.
func Counts(ctx context.Context, q Querier) ([]chart.Count, error) {
	rows, err := q.QueryContext(ctx, countsQuery)
	if err != nil {
		return nil, fmt.Errorf("count attributes: %w", err)
	}
	defer rows.Close()

	var counts []chart.Count
	for rows.Next() {
		var c chart.Count
		if err := rows.Scan(&c.Teacher, &c.Attribute, &c.Students); err != nil {
			return nil, fmt.Errorf("count attributes: scan row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count attributes: %w", err)
	}
	return counts, nil
}

// Input gathers the three datasets the chart shaper needs.
func Input(ctx context.Context, q Querier) (teachers, attributes []string, counts []chart.Count, err error) {
	if teachers, err = Teachers(ctx, q); err != nil {
		return nil, nil, nil, err
	}
	attrs, err := Attributes(ctx, q)
	if err != nil {
		return nil, nil, nil, err
	}
	attributes = make([]string, len(attrs))
	for i, a := range attrs {
		attributes[i] = a.Name
	}
	if counts, err = Counts(ctx, q); err != nil {
		return nil, nil, nil, err
	}
	return teachers, attributes, counts, nil
}

func queryStrings(ctx context.Context, q Querier, query string) ([]string, error) {
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
