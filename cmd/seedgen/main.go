package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"retailvision/internal/seed"
)

// seedgen writes the built-in sample dataset to a YAML seed file that can be
// edited and served through SEED_FILE. A ".gz" suffix selects gzip output.
func main() {
	out := flag.String("out", "data/seed.yaml.gz", "output seed file")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	d := seed.Default()
	if err := seed.Encode(f, d, *out); err != nil {
		f.Close()
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *out, err)
	}

	fmt.Printf("Created %s\n", *out)
	fmt.Printf("  retailers: %d\n", len(d.Retailers))
	fmt.Printf("  stores:    %d\n", len(d.Stores))
	fmt.Printf("  products:  %d\n", len(d.Products))
	fmt.Printf("  flows:     %d\n", len(d.Flows))
}
