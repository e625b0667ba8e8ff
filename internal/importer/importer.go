package importer

import (
	"io"

	"github.com/dmendezv/fiado/internal/credit"
)

type Format string

const (
	// FormatSheet is the semicolon-separated spreadsheet export most shops
	// keep their fiado book in before migrating.
	FormatSheet Format = "sheet"
)

type Importer interface {
	Parse(r io.Reader) ([]credit.CreateParams, error)
}
