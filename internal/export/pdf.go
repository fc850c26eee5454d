package export

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	pdfFontSize = 10
	pdfLeading  = 14
)

// buildTextPDF writes a single A4 page of monospaced lines. Text is encoded
// as WinAnsi so characters such as the em dash survive.
func buildTextPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Schedule"}
	}

	encoder := charmap.Windows1252.NewEncoder()
	var content strings.Builder
	content.WriteString(fmt.Sprintf("BT\n/F1 %d Tf\n%d TL\n40 800 Td\n", pdfFontSize, pdfLeading))
	for i, line := range lines {
		encoded, err := encoder.String(line)
		if err != nil {
			return nil, fmt.Errorf("encode pdf line %d: %w", i+1, err)
		}
		escaped := pdfEscape(encoded)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Courier /Encoding /WinAnsiEncoding >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)
	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}

// RenderPDF prints the yellow page as a plain text sheet.
func RenderPDF(p YellowPage) ([]byte, error) {
	title := p.GymName
	if title == "" {
		title = p.GymID
	}
	lines := []string{
		"Yellow Page - " + title,
		"Date Range: " + p.DateRange,
		"",
	}
	for _, sec := range p.Sections {
		lines = append(lines,
			strings.ToUpper(sec.WallType),
			fmt.Sprintf("%-3s %-6s %-30s %-18s %s", "#", "Date", "Location", "Climb Type", "# of Setters"),
		)
		for _, r := range sec.Rows {
			lines = append(lines, fmt.Sprintf("%-3d %-6s %-30s %-18s %s",
				r.Number, r.Date, truncate(r.Location, 30), truncate(r.ClimbType, 18), r.Setters))
		}
		lines = append(lines, "")
	}
	return buildTextPDF(lines)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "~"
}
