package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/minijson-format/go-minijson/parse"

	"go.lsp.dev/protocol"
)

// Hover surfaces the parse failure for the hovered line: the message, the
// byte offset, and the caret snippet.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.parseErr == nil {
		return nil, nil
	}
	var pErr *parse.Error
	if !errors.As(doc.parseErr, &pErr) {
		return nil, nil
	}
	line, _ := parse.LineCol([]byte(doc.content), pErr.Cursor)
	if int(params.Position.Line) != line {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind: protocol.Markdown,
			Value: fmt.Sprintf("%s at offset %d\n```\n%s\n```",
				pErr.Message(), pErr.Cursor, parse.Context([]byte(doc.content), pErr.Cursor)),
		},
	}, nil
}
