package energy

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed data/*.yaml
var defaultData embed.FS

// Dataset holds the records of every source. Each slice is sorted by year;
// points without a year are kept at the end so they can be reported.
type Dataset map[Source][]DataPoint

// datasetFile is the on-disk layout of an external dataset.
type datasetFile struct {
	Coal []DataPoint `yaml:"coal" json:"coal"`
	Gas  []DataPoint `yaml:"gas" json:"gas"`
	Oil  []DataPoint `yaml:"oil" json:"oil"`
}

// Default returns the embedded dataset.
func Default() (Dataset, error) {
	ds := make(Dataset, NumSources)
	for _, src := range Sources {
		raw, err := defaultData.ReadFile("data/" + src.String() + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("reading embedded %s data: %w", src, err)
		}
		var points []DataPoint
		if err := yaml.Unmarshal(raw, &points); err != nil {
			return nil, fmt.Errorf("parsing embedded %s data: %w", src, err)
		}
		ds[src] = sortByYear(points)
	}
	return ds, nil
}

// Load reads the dataset at path, or the embedded one when path is empty.
// The format follows the extension: .json is JSON, anything else YAML.
func Load(path string) (Dataset, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	return Decode(f, format)
}

// Decode parses a dataset in the given format ("yaml" or "json").
func Decode(r io.Reader, format string) (Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var file datasetFile
	switch format {
	case "json":
		err = json.Unmarshal(raw, &file)
	case "yaml", "yml":
		err = yaml.Unmarshal(raw, &file)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s dataset: %w", format, err)
	}

	return Dataset{
		Coal: sortByYear(file.Coal),
		Gas:  sortByYear(file.Gas),
		Oil:  sortByYear(file.Oil),
	}, nil
}

// Lookup returns the point of src at year.
func (d Dataset) Lookup(src Source, year int) (DataPoint, bool) {
	points := d[src]
	i := sort.Search(len(points), func(i int) bool {
		return points[i].YearOr(int(^uint(0)>>1)) >= year
	})
	if i < len(points) && points[i].HasYear() && *points[i].Year == year {
		return points[i], true
	}
	return DataPoint{}, false
}

func sortByYear(points []DataPoint) []DataPoint {
	out := make([]DataPoint, len(points))
	copy(out, points)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.HasYear() || !b.HasYear() {
			return a.HasYear() && !b.HasYear()
		}
		return *a.Year < *b.Year
	})
	return out
}
