package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"blogify/internal/models"
)

// Exporter — интерфейс (удобно мокать в тестах)
type Exporter interface {
	ExportBlog(w io.Writer, blog *models.Blog) error
}

type BlogExporter struct{}

func NewBlogExporter() *BlogExporter {
	return &BlogExporter{}
}

// ExportBlog — пост в виде A4-документа, отдаётся в поток без записи на диск.
func (e *BlogExporter) ExportBlog(w io.Writer, blog *models.Blog) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(blog.Title, false)
	pdf.SetAuthor("Blogify", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ===== Заголовок
	pdf.SetFont("Arial", "B", 18)
	pdf.MultiCell(0, 10, blog.Title, "", "C", false)

	pdf.SetFont("Arial", "", 11)
	sub := fmt.Sprintf("#%d  ·  %s", blog.ID, blog.CreatedAt.Format("02.01.2006"))
	if blog.AuthorName != "" {
		sub = fmt.Sprintf("%s  ·  %s", blog.AuthorName, sub)
	}
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	e.hr(pdf)
	pdf.Ln(3)

	// ===== Теги
	if len(blog.Tags) > 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 6, "Tags: "+strings.Join(blog.Tags, ", "), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	// ===== Текст
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 6, blog.Content, "", "L", false)

	return pdf.Output(w)
}

func (e *BlogExporter) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(left, y+1, pageW-right, y+1)
	pdf.SetXY(x, y+3)
}
