// Package loader turns NoteD session logs into typed event records.
package loader

import (
	"context"
	"encoding/csv"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/noted-input/noted-analyze/internal/model"
	"github.com/noted-input/noted-analyze/internal/pkg/nderr"
)

const utf8BOM = "\ufeff"

// rowReader is satisfied by *csv.Reader and by the in-memory rows of a spreadsheet.
type rowReader interface {
	Read() ([]string, error)
}

type Loader struct {
	logger zerolog.Logger
}

func New() *Loader {
	return &Loader{
		logger: log.With().Str("module", "loader").Logger(),
	}
}

// Load reads the session log at path. Plain CSV, gzip/bzip2/xz compressed CSV and
// .xlsx exports are accepted; all of them must carry the NoteD header row.
func (l *Loader) Load(ctx context.Context, path string) ([]*model.Event, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err := readXLSXRows(path)
		if err != nil {
			return nil, openError(err, path, "failed to read xlsx log")
		}
		l.logger.Debug().Str("path", path).Str("format", "xlsx").Msg("reading session log")
		return l.Decode(ctx, rows)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, openError(err, path, "failed to open log")
	}
	defer f.Close()

	r, compression, err := decompress(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decompress %s log", compression)
	}
	defer r.Close()

	l.logger.Debug().
		Str("path", path).
		Stringer("compression", compression).
		Msg("reading session log")

	return l.Decode(ctx, newCSVReader(r))
}

func openError(err error, path, message string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return nderr.ErrFileNotFound.Msg("File not found: %s", path)
	}
	return errors.Wrap(err, message)
}

// Decode maps every row after the header to an event, one-to-one and in order.
// An input without any row (not even a header) yields no events.
func (l *Loader) Decode(ctx context.Context, rows rowReader) ([]*model.Event, error) {
	header, err := rows.Read()
	if err == io.EOF {
		return []*model.Event{}, nil
	}
	if err != nil {
		return nil, nderr.ErrMalformedRow.Msg("header: %v", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	events := make([]*model.Event, 0, 1024)
	for rowNum := 1; ; rowNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := rows.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nderr.ErrMalformedRow.Msg("row %d: %v", rowNum, err)
		}

		event, err := cols.decode(row)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", rowNum)
		}
		events = append(events, event)
	}

	l.logger.Debug().Int("events", len(events)).Msg("decoded session log")

	return events, nil
}

func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true
	return reader
}

// columnIndex holds the position of each NoteD column in the header row.
type columnIndex map[string]int

func indexColumns(header []string) (columnIndex, error) {
	normalized := normalizeHeader(header)

	cols := make(columnIndex, len(model.Columns))
	for _, name := range model.Columns {
		idx := lo.IndexOf(normalized, name)
		if idx < 0 {
			return nil, nderr.ErrMalformedRow.Msg("header: required column %q is missing", name)
		}
		cols[name] = idx
	}
	return cols, nil
}

func normalizeHeader(header []string) []string {
	return lo.Map(header, func(name string, i int) string {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		return strings.TrimSpace(name)
	})
}

// cell returns the value of column name in row. ok is false when the row is
// too short to hold that column.
func (c columnIndex) cell(row []string, name string) (value string, ok bool) {
	idx := c[name]
	if idx >= len(row) {
		return "", false
	}
	return row[idx], true
}

func (c columnIndex) required(row []string, name string) (string, error) {
	value, ok := c.cell(row, name)
	if !ok {
		return "", nderr.ErrMalformedRow.Msg("column %q: value is missing", name)
	}
	return value, nil
}

func (c columnIndex) decode(row []string) (*model.Event, error) {
	var event model.Event

	qpc, err := c.required(row, model.ColumnTimestampQPC)
	if err != nil {
		return nil, err
	}
	event.TimestampQPC, err = strconv.ParseInt(strings.TrimSpace(qpc), 10, 64)
	if err != nil {
		return nil, nderr.ErrMalformedRow.Msg("column %q: %q is not an integer", model.ColumnTimestampQPC, qpc)
	}

	ms, err := c.required(row, model.ColumnTimestampMs)
	if err != nil {
		return nil, err
	}
	if event.TimestampMs, err = parseFinite(model.ColumnTimestampMs, ms); err != nil {
		return nil, err
	}

	if event.Device, err = c.required(row, model.ColumnDevice); err != nil {
		return nil, err
	}
	if event.Key, err = c.required(row, model.ColumnKey); err != nil {
		return nil, err
	}
	if event.EventType, err = c.required(row, model.ColumnEventType); err != nil {
		return nil, err
	}

	if event.DeadzoneDeltaMs, err = c.optionalFloat(row, model.ColumnDeadzoneDeltaMs); err != nil {
		return nil, err
	}
	if event.CounterDeltaMs, err = c.optionalFloat(row, model.ColumnCounterDeltaMs); err != nil {
		return nil, err
	}

	return &event, nil
}

// optionalFloat treats an empty or absent cell as "no value", never as zero.
func (c columnIndex) optionalFloat(row []string, name string) (null.Float, error) {
	value, ok := c.cell(row, name)
	if !ok || value == "" {
		return null.Float{}, nil
	}
	f, err := parseFinite(name, value)
	if err != nil {
		return null.Float{}, err
	}
	return null.FloatFrom(f), nil
}

// parseFinite rejects inf and nan, which strconv accepts.
func parseFinite(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, nderr.ErrMalformedRow.Msg("column %q: %q is not a finite number", name, value)
	}
	return f, nil
}
