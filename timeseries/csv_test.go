package timeseries

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	// Test basic CSV loading
	csvData := `ds,y
2020-01-01,100
2020-01-02,101
2020-01-03,102
2020-01-04,103
2020-01-05,104`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", series.Len())
	}

	// Check values
	expected := []float64{100, 101, 102, 103, 104}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	t.Logf("Loaded %d values: %v", series.Len(), series.Values)
}

func TestLoadCSVWithNAValues(t *testing.T) {
	// Test handling of NA values
	csvData := `ds,y
2020-01-01,100
2020-01-02,NA
2020-01-03,102
2020-01-04,NaN
2020-01-05,104`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	// NA and NaN values should be skipped
	if series.Len() != 3 {
		t.Errorf("Expected 3 observations (NA values skipped), got %d", series.Len())
	}

	expected := []float64{100, 102, 104}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	t.Logf("Series with NA skipped: %v", series.Values)
}

func TestLoadCSVMultipleColumns(t *testing.T) {
	// Test loading specific column
	csvData := `ds,Beer,Cement,Gas
2020-01-01,100,200,50
2020-01-02,110,210,55
2020-01-03,120,220,60`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.ValueColumn = "Cement"

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{200, 210, 220}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	if series.Name != "Cement" {
		t.Errorf("Expected series name 'Cement', got '%s'", series.Name)
	}

	t.Logf("Cement column: %v", series.Values)
}

func TestLoadCSVQuotedFields(t *testing.T) {
	// Test handling of quoted fields
	csvData := `"unique_id","ds","y"
"Australia","2020-01-01","1000000"
"Australia","2020-01-02","1000100"
"Australia","2020-01-03","1000200"`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 3 {
		t.Errorf("Expected 3 observations, got %d", series.Len())
	}

	t.Logf("Quoted fields loaded: %v", series.Values)
}

func TestLoadCSVFallbackToLastColumn(t *testing.T) {
	// When the requested column is missing, the last column is used.
	csvData := `ds,observed
2020-01-01,7
2020-01-02,8`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.ValueColumn = "nope"

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 2 || series.Values[0] != 7 {
		t.Errorf("Expected fallback to last column, got %v", series.Values)
	}
}

func TestLoadCSVNoHeader(t *testing.T) {
	csvData := `100
101
102`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.HasHeader = false

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 3 {
		t.Errorf("Expected 3 observations, got %d", series.Len())
	}
}

func TestLoadCSVSkipRows(t *testing.T) {
	csvData := `# exported 2020-02-01
ds,y
2020-01-01,1
2020-01-02,2`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.SkipRows = 1

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 2 {
		t.Errorf("Expected 2 observations, got %d", series.Len())
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	reader := strings.NewReader("ds,y\n")
	if _, err := LoadCSVFromReader(reader, DefaultCSVOptions()); err == nil {
		t.Error("Expected error for CSV with no data rows")
	}
}

func TestSaveAndLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "series.csv")

	original := NewNamed("y", []float64{1.5, 2.25, -3})
	if err := SaveCSV(original, path); err != nil {
		t.Fatalf("Failed to save CSV: %v", err)
	}

	loaded, err := LoadCSV(path, DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if loaded.Len() != original.Len() {
		t.Fatalf("Expected %d values, got %d", original.Len(), loaded.Len())
	}
	for i := range original.Values {
		if loaded.Values[i] != original.Values[i] {
			t.Errorf("Value at index %d: expected %f, got %f", i, original.Values[i], loaded.Values[i])
		}
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if opts.ValueColumn != "y" {
		t.Errorf("Expected default value column 'y', got '%s'", opts.ValueColumn)
	}

	if !opts.HasHeader {
		t.Error("Expected HasHeader to be true by default")
	}

	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(os.TempDir(), "does-not-exist-robarma.csv"), nil); err == nil {
		t.Error("Expected error for missing file")
	}
}
