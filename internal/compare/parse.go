package compare

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// ErrRowFormat reports a comparison-table row the parser could not
// understand. Such rows are logged and dropped rather than degrading
// into placeholder values.
var ErrRowFormat = errors.New("malformed comparison row")

// Row is one parsed comparison group from the critcmp table.
type Row struct {
	Name    string
	Base    Measurement
	Changes Measurement
}

// Measurement is one side of a comparison group. Duration and Error are
// in seconds; Display keeps the raw cell text for report rendering.
type Measurement struct {
	Present  bool
	Factor   float64
	Display  string
	Duration float64
	Error    float64
}

// Table columns are separated by runs of two or more spaces:
// name, base factor, base duration, base bandwidth, changes factor,
// changes duration, changes bandwidth. Bandwidth columns are ignored.
var fieldSep = regexp.MustCompile(`\s{2,}`)

// Parse reads the critcmp text table: a two-line header followed by one
// line per comparison group. Malformed rows are dropped with a warning.
func Parse(raw string, logger *slog.Logger) []Row {
	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	if len(lines) <= 2 {
		return nil
	}

	var rows []Row
	for _, line := range lines[2:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			logger.Warn("dropping comparison row", "line", strings.TrimSpace(line), "error", err)
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func parseRow(line string) (Row, error) {
	fields := fieldSep.Split(strings.TrimSpace(line), -1)
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	row := Row{Name: field(0)}
	if row.Name == "" {
		return Row{}, fmt.Errorf("%w: missing name", ErrRowFormat)
	}

	var err error
	if row.Base, err = parseMeasurement(field(1), field(2)); err != nil {
		return Row{}, err
	}
	if row.Changes, err = parseMeasurement(field(4), field(5)); err != nil {
		return Row{}, err
	}
	if !row.Base.Present && !row.Changes.Present {
		return Row{}, fmt.Errorf("%w: %q has no durations", ErrRowFormat, row.Name)
	}
	return row, nil
}

func parseMeasurement(factor, duration string) (Measurement, error) {
	if duration == "" {
		return Measurement{}, nil
	}
	m := Measurement{Present: true, Display: duration}
	if factor != "" {
		f, err := strconv.ParseFloat(factor, 64)
		if err != nil {
			return Measurement{}, fmt.Errorf("%w: factor %q", ErrRowFormat, factor)
		}
		m.Factor = f
	}
	var err error
	if m.Duration, m.Error, err = toSeconds(duration); err != nil {
		return Measurement{}, err
	}
	return m, nil
}

// Durations read "<magnitude>±<error><unit>" with the unit on the error
// part, e.g. "46.0±0.90ms".
var unitDivisors = []struct {
	suffix  string
	divisor float64
}{
	{"ms", 1e3},
	{"µs", 1e6},
	{"ns", 1e9},
	{"s", 1},
}

func toSeconds(field string) (duration, uncertainty float64, err error) {
	magStr, errStr, ok := strings.Cut(field, "±")
	if !ok {
		return 0, 0, fmt.Errorf("%w: duration %q", ErrRowFormat, field)
	}

	divisor := 0.0
	for _, u := range unitDivisors {
		if strings.HasSuffix(errStr, u.suffix) {
			divisor = u.divisor
			errStr = strings.TrimSuffix(errStr, u.suffix)
			break
		}
	}
	if divisor == 0 {
		return 0, 0, fmt.Errorf("%w: unknown unit in %q", ErrRowFormat, field)
	}

	mag, magErr := strconv.ParseFloat(magStr, 64)
	unc, uncErr := strconv.ParseFloat(errStr, 64)
	if magErr != nil || uncErr != nil {
		return 0, 0, fmt.Errorf("%w: duration %q", ErrRowFormat, field)
	}
	return mag / divisor, unc / divisor, nil
}
