package obras

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// LocateSourceFile finds the capture file inside dataDir: datos.xlsx first,
// then datos.csv, then any other CSV in alphabetical order.
func LocateSourceFile(dataDir string) (string, error) {
	for _, name := range []string{"datos.xlsx", "datos.csv"} {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	matches, err := filepath.Glob(filepath.Join(dataDir, "*.csv"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no source file found in %s", dataDir)
	}
	sort.Strings(matches)
	return matches[0], nil
}

// ReadRows loads the positional rows from a CSV or XLSX capture file. The
// first row of the file is the human header and is always discarded. Set
// latin1 when the CSV was exported with Windows-1252 encoding.
func ReadRows(path string, latin1 bool) ([]RawRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	case ".csv":
		return readCSV(path, latin1)
	default:
		return nil, fmt.Errorf("unsupported source file %s", path)
	}
}

func readCSV(path string, latin1 bool) ([]RawRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %v", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if latin1 {
		reader = charmap.Windows1252.NewDecoder().Reader(file)
	}

	df := dataframe.ReadCSV(reader,
		dataframe.HasHeader(false),
		dataframe.WithLazyQuotes(true),
	)
	if df.Err != nil {
		return nil, df.Err
	}

	records := df.Records()
	// Records() starts with the synthesized column names, the next record is
	// the file's own header row. Data begins after both.
	if len(records) < 3 {
		return nil, nil
	}

	rows := make([]RawRow, 0, len(records)-2)
	for _, record := range records[2:] {
		cells := make([]any, len(record))
		for i, cell := range record {
			cells[i] = cell
		}
		rows = append(rows, RowFromCells(cells))
	}
	return rows, nil
}

func readXLSX(path string) ([]RawRow, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %v", path, err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	records, err := file.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	rows := make([]RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		cells := make([]any, len(record))
		for i, cell := range record {
			cells[i] = cell
		}
		rows = append(rows, RowFromCells(cells))
	}
	return rows, nil
}
