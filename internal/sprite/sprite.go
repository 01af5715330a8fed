// Package sprite loads the text art drawn for each character. The art is
// drawn facing left; the renderer mirrors it when a character faces right.
package sprite

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

//go:embed art/*.txt
var builtin embed.FS

var (
	ErrSpriteNotFound = errors.New("sprite not found")
	ErrEmptySprite    = errors.New("sprite is empty")
)

type Sprite struct {
	ID    string
	Lines []string
}

// Width is the widest line, in cells.
func (s *Sprite) Width() int {
	w := 0
	for _, l := range s.Lines {
		if n := utf8.RuneCountInString(l); n > w {
			w = n
		}
	}
	return w
}

// Height is the number of lines, in cells.
func (s *Sprite) Height() int {
	return len(s.Lines)
}

// Parse turns text art into a sprite. Trailing blank lines and carriage
// returns are dropped.
func Parse(id string, data []byte) (*Sprite, error) {
	text := strings.ReplaceAll(string(data), "\r", "")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	s := &Sprite{ID: id, Lines: lines}
	if s.Width() == 0 {
		return nil, fmt.Errorf("%s: %w", id, ErrEmptySprite)
	}
	return s, nil
}

type Loader struct {
	fsys fs.FS
}

// NewLoader reads <id>.txt files from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Builtin returns a loader over the art compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtin, "art")
	if err != nil {
		panic(err)
	}
	return NewLoader(sub)
}

// Dir returns a loader for an art directory, falling back to the built-in
// art for sprites the directory does not have.
func Dir(path string) *Loader {
	return &Loader{fsys: fallbackFS{primary: os.DirFS(path), fallback: Builtin().fsys}}
}

func (l *Loader) Load(ctx context.Context, id string) (*Sprite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.fsys, id+".txt")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", id, ErrSpriteNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", id, err)
	}
	return Parse(id, data)
}

type fallbackFS struct {
	primary, fallback fs.FS
}

func (f fallbackFS) Open(name string) (fs.File, error) {
	file, err := f.primary.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return f.fallback.Open(name)
	}
	return file, err
}
