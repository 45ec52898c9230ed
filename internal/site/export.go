package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/kb"
)

// Exporter renders the knowledge base as a standalone HTML page, so the FAQ
// and programme can be published or reviewed outside the chat widget.
type Exporter struct {
	base      *kb.KnowledgeBase
	OutputDir string
	Title     string
}

// NewExporter creates an Exporter for the given knowledge base.
func NewExporter(base *kb.KnowledgeBase, outputDir, title string) *Exporter {
	if title == "" {
		title = "De Koninklijke Loop"
	}
	return &Exporter{base: base, OutputDir: outputDir, Title: title}
}

// pageData holds the data passed to the HTML template.
type pageData struct {
	Title   string
	Content template.HTML
}

// Export writes index.html and style.css to the output directory and returns
// the path of the generated page.
func (e *Exporter) Export() (string, error) {
	if e.base.NumFAQEntries() == 0 && e.base.NumScheduleEntries() == 0 {
		return "", fmt.Errorf("knowledge base is empty, nothing to export")
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(htmlrenderer.WithUnsafe()),
	)

	var htmlBuf bytes.Buffer
	if err := md.Convert([]byte(e.buildMarkdown()), &htmlBuf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing page template: %w", err)
	}

	var pageBuf bytes.Buffer
	err = tmpl.Execute(&pageBuf, pageData{
		Title:   e.Title,
		Content: template.HTML(htmlBuf.String()),
	})
	if err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(e.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return "", err
	}

	outPath := filepath.Join(e.OutputDir, "index.html")
	if err := os.WriteFile(outPath, pageBuf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return outPath, nil
}

// buildMarkdown renders the knowledge base as one markdown document: the
// programme as a GFM table, then the FAQ per category.
func (e *Exporter) buildMarkdown() string {
	var sb strings.Builder

	sb.WriteString("# " + e.Title + "\n\n")

	if len(e.base.Schedule) > 0 {
		sb.WriteString("## Programma\n\n")
		sb.WriteString("| Tijd | Onderdeel | Details |\n")
		sb.WriteString("| --- | --- | --- |\n")
		for _, item := range e.base.Schedule {
			sb.WriteString("| " + tableCell(item.Time) +
				" | " + tableCell(item.EventDescription) +
				" | " + tableCell(item.Details) + " |\n")
		}
		sb.WriteString("\n")
	}

	if len(e.base.FAQ) > 0 {
		sb.WriteString("## Veelgestelde vragen\n\n")
		for _, category := range e.base.FAQ {
			sb.WriteString("### " + category.Title + "\n\n")
			for _, item := range category.Questions {
				sb.WriteString("#### " + item.Question + "\n\n")
				sb.WriteString(item.Answer + "\n\n")
				if item.Action && item.ActionText != "" {
					sb.WriteString("*" + item.ActionText + "*\n\n")
				}
			}
		}
	}

	return sb.String()
}

// tableCell escapes pipes so free text cannot break the table layout.
func tableCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
