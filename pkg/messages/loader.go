package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads a message table from a YAML or JSON file on disk.
func Load(ctx context.Context, path string) (map[string]string, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	return parser.Parse(ctx, content)
}

// LoadFS reads a message table from fsys, for example an embed.FS.
func LoadFS(ctx context.Context, fsys fs.FS, path string) (map[string]string, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	return parser.Parse(ctx, content)
}

func parserFor(path string) (Parser, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return parser, nil
}
