// Package seed provides the sample dataset the catalog is served from, and
// loaders for YAML seed files kept on local disk or in S3.
package seed

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strings"

	"retailvision/internal/model"

	"gopkg.in/yaml.v3"
)

// Dataset is the full catalog snapshot served by the API.
type Dataset struct {
	Retailers      []model.Retailer       `yaml:"retailers"`
	Stores         []model.Store          `yaml:"stores"`
	Products       []model.Product        `yaml:"products"`
	Flows          []model.CategoryFlow   `yaml:"flows"`
	Impressions    []model.MonthlyMetric  `yaml:"impressions"`
	CategoryTotals []model.CategoryMetric `yaml:"categoryTotals"`
	Activity       []model.ActivityEntry  `yaml:"activity"`
}

// Loader defines the interface for loading seed files.
type Loader interface {
	// Load reads a YAML seed file, gzipped when its name ends in ".gz".
	Load(ctx context.Context, path string) (*Dataset, error)
}

// Validate checks identifiers are unique and enumerations hold known values.
func (d *Dataset) Validate() error {
	retailerIDs := make(map[int]struct{}, len(d.Retailers))
	for _, r := range d.Retailers {
		if _, dup := retailerIDs[r.ID]; dup {
			return fmt.Errorf("duplicate retailer id %d", r.ID)
		}
		retailerIDs[r.ID] = struct{}{}
		if r.Status != model.RetailerActive && r.Status != model.RetailerPending {
			return fmt.Errorf("retailer %d: invalid status %q", r.ID, r.Status)
		}
	}

	storeIDs := make(map[string]struct{}, len(d.Stores))
	for _, s := range d.Stores {
		if s.ID == "" {
			return fmt.Errorf("store %q has no id", s.Name)
		}
		if _, dup := storeIDs[s.ID]; dup {
			return fmt.Errorf("duplicate store id %s", s.ID)
		}
		storeIDs[s.ID] = struct{}{}
		if s.Status != model.StoreActive && s.Status != model.StoreSetup {
			return fmt.Errorf("store %s: invalid status %q", s.ID, s.Status)
		}
	}

	productIDs := make(map[int]struct{}, len(d.Products))
	for _, p := range d.Products {
		if _, dup := productIDs[p.ID]; dup {
			return fmt.Errorf("duplicate product id %d", p.ID)
		}
		productIDs[p.ID] = struct{}{}
	}

	flowIDs := make(map[string]struct{}, len(d.Flows))
	for _, f := range d.Flows {
		if _, dup := flowIDs[f.ID]; dup {
			return fmt.Errorf("duplicate flow id %s", f.ID)
		}
		flowIDs[f.ID] = struct{}{}
		switch f.Status {
		case model.FlowActive, model.FlowDraft, model.FlowArchived:
		default:
			return fmt.Errorf("flow %s: invalid status %q", f.ID, f.Status)
		}
		for _, q := range f.Questions {
			switch q.Type {
			case model.QuestionText, model.QuestionMultipleChoice, model.QuestionBoolean:
			default:
				return fmt.Errorf("flow %s question %s: invalid type %q", f.ID, q.ID, q.Type)
			}
		}
	}

	return nil
}

// Decode reads a dataset from r. name decides whether r is gzip-compressed.
func Decode(r io.Reader, name string) (*Dataset, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var d Dataset
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode seed %s: %w", name, err)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed %s: %w", name, err)
	}

	return &d, nil
}

// Encode writes d as YAML, gzip-compressed when name ends in ".gz".
func Encode(w io.Writer, d *Dataset, name string) error {
	if strings.HasSuffix(name, ".gz") {
		gzipWriter := gzip.NewWriter(w)
		if err := encodeYAML(gzipWriter, d); err != nil {
			gzipWriter.Close()
			return err
		}
		return gzipWriter.Close()
	}
	return encodeYAML(w, d)
}

func encodeYAML(w io.Writer, d *Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode seed: %w", err)
	}
	return enc.Close()
}
