// Package docs renders a markdown API reference from a parsed API
// description document.
package docs

import (
	"sort"
	"strings"

	"github.com/gensmith-dev/gensmith/internal/document"
	"github.com/gensmith-dev/gensmith/internal/template"
)

const referenceTemplate = "# {{title}}\n" +
	"\n" +
	"Version: {{version}}\n" +
	"{{#description}}\n{{description}}\n{{/description}}" +
	"{{#servers}}\n- Server: `{{url}}`{{#note}} ({{note}}){{/note}}\n{{/servers}}" +
	"\n## Endpoints\n" +
	"{{#endpoints}}\n### {{method}} `{{path}}`\n" +
	"{{#summary}}\n{{summary}}\n{{/summary}}" +
	"{{#operationId}}\nOperation: `{{operationId}}`\n{{/operationId}}" +
	"{{#responses}}- `{{status}}`: {{text}}\n{{/responses}}" +
	"{{/endpoints}}"

// Generator renders markdown documentation for a document.
type Generator struct{}

// NewGenerator creates a docs generator.
func NewGenerator() *Generator { return &Generator{} }

// Language returns the name of the target.
func (g *Generator) Language() string { return "docs" }

// FileExtension returns the generated file extension.
func (g *Generator) FileExtension() string { return ".md" }

// Generate renders the API reference. A nil document fails with
// document.ErrNoDocumentParsed.
func (g *Generator) Generate(doc *document.Document) ([]byte, error) {
	if doc == nil {
		return nil, document.ErrNoDocumentParsed
	}

	ctx := template.Context{
		"title":       doc.Info.Title,
		"version":     doc.Info.Version,
		"description": doc.Info.Description,
		"servers":     serverContexts(doc),
		"endpoints":   endpointContexts(doc),
	}
	return []byte(template.Render(referenceTemplate, ctx)), nil
}

func serverContexts(doc *document.Document) []map[string]any {
	servers := make([]map[string]any, len(doc.Servers))
	for i, s := range doc.Servers {
		servers[i] = map[string]any{"url": s.URL, "note": s.Description}
	}
	return servers
}

// endpointContexts flattens paths into per-operation entries. Paths are
// sorted so output is deterministic regardless of map iteration order.
func endpointContexts(doc *document.Document) []map[string]any {
	paths := make([]string, 0, len(doc.Paths))
	for path := range doc.Paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var endpoints []map[string]any
	for _, path := range paths {
		item := doc.Paths[path]
		for _, vo := range item.Operations() {
			endpoints = append(endpoints, map[string]any{
				"path":        path,
				"method":      strings.ToUpper(vo.Verb),
				"summary":     vo.Operation.Summary,
				"operationId": vo.Operation.OperationID,
				"responses":   responseContexts(vo.Operation),
			})
		}
	}
	return endpoints
}

func responseContexts(op *document.Operation) []map[string]any {
	statuses := make([]string, 0, len(op.Responses))
	for status := range op.Responses {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	responses := make([]map[string]any, len(statuses))
	for i, status := range statuses {
		responses[i] = map[string]any{"status": status, "text": op.Responses[status].Description}
	}
	return responses
}
