// Command plotify-seed builds a school store from a YAML dataset, for local
// development and demos.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eargollo/plotify/internal/db"
)

func main() {
	dataPath := flag.String("data", "seed.example.yaml", "path to YAML dataset")
	outPath := flag.String("out", "plotify.db", "path of the store to create")
	force := flag.Bool("force", false, "replace an existing store")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(*dataPath, *outPath, *force); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("store written", "path", *outPath)
}

func run(dataPath, outPath string, force bool) error {
	ds, err := loadDataset(dataPath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(outPath); err == nil {
		if !force {
			return fmt.Errorf("%q already exists (use -force to replace)", outPath)
		}
		if err := os.Remove(outPath); err != nil {
			return fmt.Errorf("remove %q: %w", outPath, err)
		}
	}

	return db.Build(context.Background(), outPath, ds)
}

func loadDataset(path string) (db.Dataset, error) {
	var ds db.Dataset
	f, err := os.Open(path)
	if err != nil {
		return ds, fmt.Errorf("open dataset %q: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return ds, fmt.Errorf("parse dataset %q: %w", path, err)
	}
	return ds, nil
}
