package xlsx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// appName is written to docProps/app.xml.
const appName = "gridscan"

// ErrNoSheets is returned when writing a workbook that contains no sheets.
// Excel refuses to open a workbook without at least one worksheet.
var ErrNoSheets = errors.New("xlsx: workbook has no sheets")

// Workbook represents a spreadsheet document to be written.
type Workbook struct {
	Sheets  []*Sheet
	Creator string // Written to docProps/core.xml when set
	Title   string // Written to docProps/core.xml when set
}

// NewWorkbook creates an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{}
}

// AddSheet appends a new sheet with the given name and returns it.
// The name is sanitized to satisfy Excel's sheet naming rules.
func (wb *Workbook) AddSheet(name string) *Sheet {
	sheet := NewSheet(sanitizeSheetName(name))
	wb.Sheets = append(wb.Sheets, sheet)
	return sheet
}

// Write writes the workbook in XLSX format.
func (wb *Workbook) Write(w io.Writer) error {
	if len(wb.Sheets) == 0 {
		return ErrNoSheets
	}

	zw := zip.NewWriter(w)

	if err := writePart(zw, "[Content_Types].xml", wb.contentTypes()); err != nil {
		return err
	}
	if err := writePart(zw, "_rels/.rels", wb.packageRels()); err != nil {
		return err
	}
	if err := writePart(zw, "docProps/core.xml", wb.coreProperties()); err != nil {
		return err
	}
	if err := writePart(zw, "docProps/app.xml", wb.appProperties()); err != nil {
		return err
	}
	if err := writePart(zw, "xl/workbook.xml", wb.workbook()); err != nil {
		return err
	}
	if err := writePart(zw, "xl/_rels/workbook.xml.rels", wb.workbookRels()); err != nil {
		return err
	}
	for i, sheet := range wb.Sheets {
		name := fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1)
		if err := writePart(zw, name, buildWorksheet(sheet)); err != nil {
			return err
		}
	}

	return zw.Close()
}

// WriteFile writes the workbook to a file in XLSX format.
func (wb *Workbook) WriteFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := wb.Write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// writePart marshals v and writes it into the archive under name.
func writePart(zw *zip.Writer, name string, v interface{}) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create part %s: %w", name, err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write part %s: %w", name, err)
	}
	if err := xml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to write part %s: %w", name, err)
	}
	return nil
}

func (wb *Workbook) contentTypes() contentTypesXML {
	ct := contentTypesXML{
		Xmlns: nsContentTypes,
		Defaults: []contentDefaultXML{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []contentOverrideXML{
			{PartName: "/xl/workbook.xml", ContentType: ctWorkbook},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctExtendedProps},
		},
	}
	for i := range wb.Sheets {
		ct.Overrides = append(ct.Overrides, contentOverrideXML{
			PartName:    fmt.Sprintf("/xl/worksheets/sheet%d.xml", i+1),
			ContentType: ctWorksheet,
		})
	}
	return ct
}

func (wb *Workbook) packageRels() relationshipsXML {
	return relationshipsXML{
		Xmlns: nsPackageRels,
		Relationship: []relationshipXML{
			{ID: "rId1", Type: relOfficeDocument, Target: "xl/workbook.xml"},
			{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relExtendedProps, Target: "docProps/app.xml"},
		},
	}
}

func (wb *Workbook) coreProperties() corePropertiesXML {
	return corePropertiesXML{
		XmlnsCP: nsCoreProps,
		XmlnsDC: nsDublinCore,
		Creator: wb.Creator,
		Title:   wb.Title,
	}
}

func (wb *Workbook) appProperties() appPropertiesXML {
	return appPropertiesXML{
		Xmlns:       nsExtendedProps,
		Application: appName,
	}
}

func (wb *Workbook) workbook() workbookXML {
	book := workbookXML{
		Xmlns:  nsSpreadsheetML,
		XmlnsR: nsRelationships,
	}
	for i, sheet := range wb.Sheets {
		book.Sheets.Sheet = append(book.Sheets.Sheet, sheetRefXML{
			Name:    sheet.Name,
			SheetID: i + 1,
			RID:     fmt.Sprintf("rId%d", i+1),
		})
	}
	return book
}

func (wb *Workbook) workbookRels() relationshipsXML {
	rels := relationshipsXML{Xmlns: nsPackageRels}
	for i := range wb.Sheets {
		rels.Relationship = append(rels.Relationship, relationshipXML{
			ID:     fmt.Sprintf("rId%d", i+1),
			Type:   relWorksheet,
			Target: fmt.Sprintf("worksheets/sheet%d.xml", i+1),
		})
	}
	return rels
}

// buildWorksheet converts a sheet into its XML representation.
// Empty cells are omitted from the output.
func buildWorksheet(sheet *Sheet) worksheetXML {
	ws := worksheetXML{
		Xmlns:     nsSpreadsheetML,
		Dimension: dimensionXML{Ref: dimensionRef(sheet)},
	}

	for r, row := range sheet.Rows {
		xmlRow := rowXML{R: r + 1}
		for c, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			xmlRow.Cells = append(xmlRow.Cells, buildCell(cell, c, r))
		}
		ws.SheetData.Rows = append(ws.SheetData.Rows, xmlRow)
	}

	return ws
}

func buildCell(cell Cell, col, row int) cellXML {
	out := cellXML{R: CellRef(col, row)}

	switch cell.Type {
	case CellTypeNumber:
		// "n" is the default cell type and is omitted
		out.V = cell.Value
	case CellTypeBoolean:
		out.T = "b"
		out.V = cell.Value
	default:
		out.T = "inlineStr"
		out.Is = &inlineStrXML{T: inlineTextXML{Text: cell.Value}}
		if strings.TrimSpace(cell.Value) != cell.Value {
			out.Is.T.Space = "preserve"
		}
	}

	return out
}

// dimensionRef computes the worksheet's dimension reference (e.g., "A1:C10").
func dimensionRef(sheet *Sheet) string {
	rows := sheet.RowCount()
	cols := sheet.ColCount()
	if rows == 0 || cols == 0 || (rows == 1 && cols == 1) {
		return "A1"
	}
	return "A1:" + CellRef(cols-1, rows-1)
}

// sanitizeSheetName makes a name safe for use as an Excel sheet name.
// Excel forbids the characters []:*?/\ and limits names to 31 characters.
func sanitizeSheetName(name string) string {
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '-'
		}
		return r
	}, name)

	if replaced == "" {
		replaced = "Sheet"
	}

	runes := []rune(replaced)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}
