package loader

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// sheetRows replays the rows of a spreadsheet through the rowReader interface.
type sheetRows struct {
	rows [][]string
	next int
}

func (s *sheetRows) Read() ([]string, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.next]
	s.next++
	return row, nil
}

// readXLSXRows loads the first sheet of an Excel export. Raw cell values are used
// so that large QPC counters are not rendered in scientific notation.
func readXLSXRows(path string) (*sheetRows, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("no sheets found in workbook")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheets[0])
	}

	return &sheetRows{rows: rows}, nil
}
