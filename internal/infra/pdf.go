package infra

// pdf.go — PDF report generation for closed cortes de caja using go-pdf/fpdf.
// Generates an A7-size receipt-style summary with:
//   - Business name header
//   - Apertura / cierre timestamps
//   - Monto inicial
//   - One line per movimiento (tipo, descripcion, monto con signo)
//   - Bold monto final
//
// The output file is saved to storagePath/corte_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateCortePDF writes the printable summary of a closed corte.
// storagePath is created if needed. Returns the absolute path of the file.
func GenerateCortePDF(corte *model.CorteCaja, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("corte_%s.pdf", corte.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "FitByte Gym", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Corte de Caja", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Session info ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, "Apertura: "+corte.FechaApertura.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	if corte.FechaCierre != nil {
		pdf.CellFormat(contentW, 4, "Cierre:   "+corte.FechaCierre.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Monto inicial ─────────────────────────────────────────────────────────
	col1 := contentW * 0.62
	col2 := contentW * 0.38

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Monto inicial:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "$"+corte.MontoInicial.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.Ln(1)

	// ── Movimientos ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Movimiento", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Monto", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, mov := range corte.Movimientos {
		descr := mov.Tipo + " — " + mov.Descripcion
		if len(descr) > 30 {
			descr = descr[:29] + "…"
		}
		pdf.CellFormat(col1, 5, descr, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, "$"+mov.Monto.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Monto final ───────────────────────────────────────────────────────────
	if corte.MontoFinal != nil {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(col1, 6, "MONTO FINAL:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, "$"+corte.MontoFinal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
