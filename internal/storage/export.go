package storage

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/san-kum/orbitplot/internal/trajectory"
)

// Series marshals like []float64 but writes non-finite values as null.
type Series []float64

func (s Series) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 2+len(s)*8)
	buf = append(buf, '[')
	for i, v := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	return append(buf, ']'), nil
}

type ExportBody struct {
	Name string `json:"name"`
	X    Series `json:"x"`
	Y    Series `json:"y"`
	Z    Series `json:"z"`
}

type ExportData struct {
	Source string       `json:"source"`
	Unit   string       `json:"unit"`
	Steps  int          `json:"steps"`
	Times  Series       `json:"times"`
	Bodies []ExportBody `json:"bodies"`
}

// NewExport flattens run into its JSON form.
func NewExport(source, unit string, run *trajectory.Grouped) ExportData {
	data := ExportData{
		Source: source,
		Unit:   unit,
		Steps:  run.Steps(),
		Times:  run.Times,
		Bodies: make([]ExportBody, run.Bodies()),
	}
	for b := range data.Bodies {
		data.Bodies[b] = ExportBody{
			Name: run.Names[b],
			X:    run.Data[b][trajectory.X],
			Y:    run.Data[b][trajectory.Y],
			Z:    run.Data[b][trajectory.Z],
		}
	}
	return data
}

func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteJSON(file, data); err != nil {
		return err
	}
	return file.Close()
}

// WriteJSON encodes data indented. NaN cells are written as null.
func WriteJSON(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
