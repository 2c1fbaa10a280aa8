package main

import (
	"context"
	"strings"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/bydysawd/byd-format/byd/ir"
	"github.com/bydysawd/byd-format/byd/parse"
)

// Each non-blank line of a document is one equation.
type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	lines   []*line
}

type line struct {
	text string
	eq   *ir.Equation
	err  error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	doc := &document{
		uri:     uri,
		content: content,
		version: version,
	}
	for _, text := range strings.Split(content, "\n") {
		ln := &line{text: text}
		doc.lines = append(doc.lines, ln)
		if strings.TrimSpace(text) == "" {
			continue
		}
		ln.eq, ln.err = parse.Equation([]byte(text))
	}
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	for i, ln := range doc.lines {
		if ln.err == nil {
			continue
		}
		start, end := 0, len(ln.text)
		// Equation is parsed per line, so error offsets are columns.
		if pos := parse.PosOf(ln.err); pos != nil {
			start = pos.I
			end = start + 1
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(i), Character: uint32(start)},
				End:   protocol.Position{Line: uint32(i), Character: uint32(end)},
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  ln.err.Error(),
			Source:   "byd",
		})
	}

	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	// Sync kind is Full, so the last change carries the whole document.
	content := doc.content
	for _, change := range params.ContentChanges {
		content = change.Text
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
