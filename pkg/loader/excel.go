// pkg/loader/excel.go
package loader

import (
	"errors"

	xls "github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/emailops/email-ingress/pkg/model"
)

// loadXLSX reads the first sheet of a modern Excel workbook.
func (l *FileLoader) loadXLSX(path string) (*model.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook contains no sheets")
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var header []string
	var cells [][]string
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		if header == nil {
			header = cols
			continue
		}
		cells = append(cells, cols)
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}
	if header == nil {
		return nil, errors.New("sheet contains no header row")
	}

	return buildDataset(header, cells), nil
}

// loadXLS reads the first sheet of a legacy Excel workbook.
func (l *FileLoader) loadXLS(path string) (*model.Dataset, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, errors.New("workbook contains no sheets")
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook sheet is unreadable")
	}

	var header []string
	var cells [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		vals := make([]string, 0, row.LastCol()+1)
		for c := 0; c <= row.LastCol(); c++ {
			vals = append(vals, row.Col(c))
		}
		if header == nil {
			header = vals
			continue
		}
		cells = append(cells, vals)
	}
	if header == nil {
		return nil, errors.New("sheet contains no header row")
	}

	return buildDataset(header, cells), nil
}
