package export

import "github.com/phrazzld/catalog-forge/internal/domain"

// Exporter writes an ordered record list to a file at the given path.
// Exporters receive the orchestrator's output unchanged: no reordering, no
// filtering.
type Exporter interface {
	Export(path string, records []domain.ProductRecord) error
}

// Header is the column order shared by all sinks.
var Header = []string{"vendor", "category", "title", "description", "price"}

// row flattens a record into the shared column order.
func row(record domain.ProductRecord) []string {
	return []string{
		record.Vendor,
		record.Category,
		record.Title,
		record.Description,
		record.Price,
	}
}
