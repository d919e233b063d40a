package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
)

// Sheet is one table's worth of rows, header first, as read from any source.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Load reads path as a workbook (.xlsx), an HTML export (.html/.htm), a
// single .csv file, or a directory of <table>.csv files.
func Load(path string) ([]Sheet, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return ReadCSVDir(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path)
	case ".html", ".htm":
		return ReadHTML(path)
	case ".csv":
		sh, err := readCSV(path)
		if err != nil {
			return nil, err
		}
		return []Sheet{sh}, nil
	default:
		return nil, fmt.Errorf("unsupported import source %q", path)
	}
}

func split(name string, rows [][]string) Sheet {
	sh := Sheet{Name: name}
	if len(rows) > 0 {
		sh.Header, sh.Rows = rows[0], rows[1:]
	}
	return sh
}

func ReadXLSX(path string) ([]Sheet, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	var out []Sheet
	for _, name := range x.GetSheetList() {
		rows, err := x.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", name, err)
		}
		out = append(out, split(name, rows))
	}
	return out, nil
}

func ReadCSVDir(dir string) ([]Sheet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []Sheet
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		sh, err := readCSV(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, sh)
	}
	return out, nil
}

func readCSV(path string) (Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sheet{}, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return Sheet{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return split(name, rows), nil
}

// ReadHTML takes every <table> carrying an id (or data-table) attribute;
// the first row is the header.
func ReadHTML(path string) ([]Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}
	var out []Sheet
	doc.Find("table").Each(func(_ int, t *goquery.Selection) {
		name := t.AttrOr("id", t.AttrOr("data-table", ""))
		if name == "" {
			return
		}
		var rows [][]string
		t.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			rows = append(rows, tr.Find("th, td").Map(func(_ int, cell *goquery.Selection) string {
				return strings.TrimSpace(cell.Text())
			}))
		})
		out = append(out, split(name, rows))
	})
	return out, nil
}
