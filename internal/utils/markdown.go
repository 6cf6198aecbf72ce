package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// LimparConteudo remove marcação markdown do texto livre da coluna
// Conteúdos, devolvendo texto plano em linha única para a lista de tópicos
func LimparConteudo(texto string) string {
	if texto == "" {
		return ""
	}

	doc := markdown.Parse([]byte(texto), nil)

	var buf bytes.Buffer
	extrairTexto(doc, &buf)

	// A lista de tópicos exibe uma linha por conteúdo
	return strings.Join(strings.Fields(buf.String()), " ")
}

// extrairTexto percorre a AST acumulando apenas o texto
func extrairTexto(node ast.Node, buf *bytes.Buffer) {
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
	case *ast.Hardbreak, *ast.Softbreak:
		buf.WriteString(" ")
		return
	case *ast.HTMLBlock, *ast.HTMLSpan:
		// HTML embutido não aparece na lista
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	for _, filho := range container.Children {
		extrairTexto(filho, buf)
	}

	switch node.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.List, *ast.BlockQuote:
		buf.WriteString(" ")
	}
}
