package models

import "testing"

func TestCatalog(t *testing.T) {
	fns := Catalog()
	if len(fns) != 17 {
		t.Fatalf("catalog has %d functions, want 17", len(fns))
	}

	if !KnownFunction("Full Review") {
		t.Error("Full Review should be a known function")
	}
	if KnownFunction("Total Hours") {
		t.Error("Total Hours is a chart column, not a function")
	}
	if KnownFunction("") {
		t.Error("empty string should not be known")
	}

	// Callers must not be able to mutate the catalog through the returned slice.
	fns[0] = "tampered"
	if Catalog()[0] == "tampered" {
		t.Error("Catalog returned the internal slice")
	}
}

func TestChartColumns(t *testing.T) {
	cols := ChartColumns()
	if len(cols) != 18 {
		t.Fatalf("chart has %d columns, want 18", len(cols))
	}
	if cols[len(cols)-1] != TotalHoursColumn {
		t.Errorf("last column = %q, want %q", cols[len(cols)-1], TotalHoursColumn)
	}
}
