package models

// catalog is the fixed set of work functions. It is the domain for
// WorkLog.Function and the key set for every aggregation table. Not
// extensible at runtime.
var catalog = []string{
	"VI 3D Scan Pro",
	"VI 3D Desktop Pro",
	"Full Review",
	"Full Revision",
	"Short Review",
	"Short Revision",
	"VI Second Review",
	"Digital Operations - Sourcing",
	"Full Reports",
	"QCF (Underwriter Queue)",
	"Full Review (CI Abridged)",
	"CMP Client Import",
	"Text Followup",
	"ACR",
	"DNU Checklist Update",
	"PDC Compliance",
	"Meetings/Training",
}

var catalogSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(catalog))
	for _, f := range catalog {
		s[f] = struct{}{}
	}
	return s
}()

// TotalHoursColumn is a vestigial chart column: always present in chart
// output, never populated. Kept for consumer compatibility.
const TotalHoursColumn = "Total Hours"

func Catalog() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}

func KnownFunction(name string) bool {
	_, ok := catalogSet[name]
	return ok
}

// ChartColumns is the catalog plus the Total Hours column.
func ChartColumns() []string {
	return append(Catalog(), TotalHoursColumn)
}
