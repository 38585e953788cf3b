package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Dataset describes the contents of a school store: classes with their
// teacher and enrolled students, each carrying zero or more attributes.
type Dataset struct {
	Classes []Class `yaml:"classes"`
}

// Class is one row of the class table plus its students.
type Class struct {
	ID       int64     `yaml:"id"`
	Teacher  string    `yaml:"teacher"`
	Students []Student `yaml:"students"`
}

// Student is one row of the student table plus its attribute rows.
type Student struct {
	Name       string   `yaml:"name"`
	Attributes []string `yaml:"attributes"`
}

// Seed inserts ds into db in a single transaction.
func Seed(ctx context.Context, db *sql.DB, ds Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, c := range ds.Classes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO class (id, teacher_name) VALUES (?, ?)`, c.ID, c.Teacher); err != nil {
			return fmt.Errorf("seed: insert class %d: %w", c.ID, err)
		}
		for _, s := range c.Students {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO student (name, class_id) VALUES (?, ?)`, s.Name, c.ID); err != nil {
				return fmt.Errorf("seed: insert student %q: %w", s.Name, err)
			}
			for _, a := range s.Attributes {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO student_attribute (student_name, attribute) VALUES (?, ?)`, s.Name, a); err != nil {
					return fmt.Errorf("seed: insert attribute %q for %q: %w", a, s.Name, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}
	return nil
}

// Build creates a store at path and seeds it with ds. The database is closed
// before Build returns.
func Build(ctx context.Context, path string, ds Dataset) error {
	db, err := Create(path)
	if err != nil {
		return err
	}
	defer db.Close()
	return Seed(ctx, db, ds)
}
