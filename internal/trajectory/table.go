package trajectory

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultHeaderLines is the header size written by the simulator.
const DefaultHeaderLines = 8

// Table holds one row per physical quantity and one column per time sample.
type Table [][]float64

func (t Table) Rows() int { return len(t) }

// Cols returns the number of time samples.
func (t Table) Cols() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// File is a parsed run file.
type File struct {
	Header []string
	Table  Table
}

// Load reads the run file at path, skipping headerLines lines.
func Load(path string, headerLines int) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run file: %w", err)
	}
	defer f.Close()

	return Parse(f, headerLines)
}

// Parse reads a run from r. The first headerLines lines are kept verbatim in
// File.Header; the remaining non-blank lines are parsed as samples and
// transposed into File.Table.
func Parse(r io.Reader, headerLines int) (*File, error) {
	br := bufio.NewReader(r)

	header := make([]string, 0, headerLines)
	for i := 0; i < headerLines; i++ {
		line, err := br.ReadString('\n')
		if line != "" {
			header = append(header, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return &File{Header: header, Table: Table{}}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true
	// A stray quote is just another bad cell.
	reader.LazyQuotes = true

	var samples [][]float64
	width := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read samples: %w", offsetLines(err, headerLines))
		}

		// A trailing delimiter leaves an empty last field.
		if n := len(record); n > 0 && strings.TrimSpace(record[n-1]) == "" {
			record = record[:n-1]
		}
		if len(record) == 0 {
			continue
		}

		sample := make([]float64, len(record))
		for i, field := range record {
			sample[i] = parseCell(field)
		}
		if len(sample) > width {
			width = len(sample)
		}
		samples = append(samples, sample)
	}

	return &File{Header: header, Table: Transpose(samples, width)}, nil
}

// offsetLines shifts the line numbers of a csv parse error by the skipped
// header so they match the file.
func offsetLines(err error, n int) error {
	var pe *csv.ParseError
	if !errors.As(err, &pe) {
		return err
	}
	shifted := *pe
	shifted.StartLine += n
	shifted.Line += n
	return &shifted
}

func parseCell(field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Transpose turns per-sample lines into per-quantity rows. Lines shorter than
// width are padded with NaN.
func Transpose(samples [][]float64, width int) Table {
	table := make(Table, width)
	for q := range table {
		row := make([]float64, len(samples))
		for s, sample := range samples {
			if q < len(sample) {
				row[s] = sample[q]
			} else {
				row[s] = math.NaN()
			}
		}
		table[q] = row
	}
	return table
}

// BodyNames extracts body names from the column header line, the one that
// starts with "time". Columns look like "Earth X (km)". It returns nil when no
// such line is present.
func BodyNames(header []string) []string {
	for _, line := range header {
		cols := strings.Split(line, ",")
		if len(cols) < 2 || !strings.HasPrefix(strings.ToLower(strings.TrimSpace(cols[0])), "time") {
			continue
		}

		var names []string
		for _, col := range cols[1:] {
			fields := strings.Fields(col)
			for i, f := range fields {
				if f == "X" || f == "x" {
					names = append(names, strings.Join(fields[:i], " "))
					break
				}
			}
		}
		return names
	}
	return nil
}
