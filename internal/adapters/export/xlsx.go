// Package export renders the contact sequence into spreadsheet files.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
)

// SheetName is the worksheet that holds the exported contacts.
const SheetName = "Contacts"

// Header is the first row of the exported sheet.
var Header = []string{"Name", "Phone", "Category"}

// WriteXLSX writes contacts to w as an Excel workbook with a single sheet, in
// sequence order below a bold header row. Every cell is written as text so
// phone numbers keep leading zeros and punctuation.
func WriteXLSX(w io.Writer, contacts []*contact.Contact) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	row := 2
	for _, c := range contacts {
		if c == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []any{c.Name, c.Phone, c.Category.String()}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
		row++
	}

	if err := f.SetColWidth(SheetName, "A", "C", 24); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
