// Package export writes transaction statements as PDF or XLSX documents.
package export

import (
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/meshpay/meshpay-client/internal/domain"
)

// PDF writes a statement for the given account to w.
func PDF(transactions []domain.Transaction, account string, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "MeshPay Statement - "+account)
	pdf.Ln(12)

	// Table header
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(30, 7, "Direction", "1", 0, "", false, 0, "")
	pdf.CellFormat(50, 7, "Counterparty", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 7, "Amount (NGN)", "1", 0, "", false, 0, "")
	pdf.CellFormat(25, 7, "Status", "1", 0, "", false, 0, "")
	pdf.CellFormat(55, 7, "Timestamp", "1", 0, "", false, 0, "")
	pdf.Ln(7)

	// Table rows
	pdf.SetFont("Arial", "", 11)
	for _, tx := range transactions {
		pdf.CellFormat(30, 7, string(tx.Direction(account)), "1", 0, "", false, 0, "")
		pdf.CellFormat(50, 7, counterparty(tx, account), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, strconv.FormatFloat(tx.Amount, 'f', 2, 64), "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, string(tx.Status), "1", 0, "", false, 0, "")
		pdf.CellFormat(55, 7, tx.Timestamp, "1", 0, "", false, 0, "")
		pdf.Ln(7)
	}

	return pdf.Output(w)
}

// XLSX writes a statement for the given account to w.
func XLSX(transactions []domain.Transaction, account string, w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		return err
	}

	row := sheet.AddRow()
	row.AddCell().SetValue("Direction")
	row.AddCell().SetValue("Counterparty")
	row.AddCell().SetValue("From")
	row.AddCell().SetValue("To")
	row.AddCell().SetValue("Amount (NGN)")
	row.AddCell().SetValue("Status")
	row.AddCell().SetValue("Timestamp")

	for _, tx := range transactions {
		row = sheet.AddRow()
		row.AddCell().SetValue(string(tx.Direction(account)))
		row.AddCell().SetValue(counterparty(tx, account))
		row.AddCell().SetValue(tx.From)
		row.AddCell().SetValue(tx.To)
		row.AddCell().SetValue(tx.Amount)
		row.AddCell().SetValue(string(tx.Status))
		row.AddCell().SetValue(tx.Timestamp)
	}

	return file.Write(w)
}

func counterparty(tx domain.Transaction, account string) string {
	if tx.Direction(account) == domain.DirectionSent {
		return tx.ReceiverName
	}
	return tx.SenderName
}
