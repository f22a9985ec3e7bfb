package ports

import (
	"godrsa/domain/dataset"
)

// TableReader loads an information table from an external representation
// (CSV, Excel). Implementations live in adapters/tabular.
type TableReader interface {
	ReadTable(path string) (*dataset.InformationTable, error)
}
