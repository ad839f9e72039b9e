package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"|", `\|`,
	"<", "&lt;",
	">", "&gt;",
)

// EscapeMarkdown escapa texto digitado pelo operador antes de inseri-lo em
// um documento Markdown (nomes de modelo, observações, placa)
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

// RenderHTML converte Markdown em HTML, com suporte a tabelas
func RenderHTML(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	return string(markdown.Render(doc, renderer))
}

// StripMarkdown remove toda a formatação Markdown e retorna texto puro
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := markdown.Parse([]byte(text), p)

	var buf bytes.Buffer
	extractText(doc, &buf)

	result := strings.TrimSpace(buf.String())
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n")

	return result
}

// extractText percorre a AST extraindo o conteúdo textual
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return
	case *ast.Code:
		buf.Write(n.Literal)
		return
	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return
	case *ast.Hardbreak:
		buf.WriteString("\n")
		return
	case *ast.Softbreak:
		buf.WriteString(" ")
		return
	case *ast.HTMLBlock, *ast.HTMLSpan:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	switch node.(type) {
	case *ast.ListItem:
		buf.WriteString("• ")
	}

	for i, child := range container.Children {
		if _, ok := node.(*ast.TableRow); ok && i > 0 {
			buf.WriteString(" | ")
		}
		extractText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph, *ast.Heading:
		buf.WriteString("\n\n")
	case *ast.List, *ast.BlockQuote, *ast.TableRow:
		buf.WriteString("\n")
	case *ast.Table:
		buf.WriteString("\n")
	}
}
