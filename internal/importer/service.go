package importer

import (
	"fmt"
	"io"

	"github.com/dmendezv/fiado/internal/credit"
	"github.com/dmendezv/fiado/internal/importer/sheet"
)

type Service struct {
	sheetImporter Importer
}

func NewService() *Service {
	return &Service{
		sheetImporter: sheet.New(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]credit.CreateParams, error) {
	var importer Importer

	switch format {
	case FormatSheet:
		importer = s.sheetImporter
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return importer.Parse(r)
}
