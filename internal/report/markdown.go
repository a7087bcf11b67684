package report

import (
	"fmt"
	"strings"

	"github.com/sjlee-dev/feedlens/internal/model"
)

// RenderMarkdown renders a report document to markdown text. Rendering only
// walks the document; identical documents produce byte-identical output.
func RenderMarkdown(doc model.ReportDocument) string {
	var sections []string
	sections = append(sections, "# "+doc.Title)

	for _, s := range doc.Sections {
		var b strings.Builder
		b.WriteString("## " + s.Heading + "\n\n")
		if s.Table != nil {
			writeTable(&b, s.Table)
		} else {
			for _, line := range s.Prose {
				b.WriteString("- " + line + "\n")
			}
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	return strings.Join(sections, "\n\n") + "\n"
}

func writeTable(b *strings.Builder, t *model.Table) {
	b.WriteString("| " + strings.Join(t.Columns, " | ") + " |\n")

	separators := make([]string, len(t.Columns))
	for i := range separators {
		separators[i] = "---"
	}
	b.WriteString("| " + strings.Join(separators, " | ") + " |\n")

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = escapeCell(c)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
}

// escapeCell keeps user-supplied values from breaking table layout.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

// Filename suggests a file name for an exported report.
func Filename(kind model.ReportKind) string {
	return fmt.Sprintf("%s_report.md", kind)
}
