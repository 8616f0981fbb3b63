// Package assets loads the scene font without blocking the game loop.
package assets

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Fonts hands out text faces. Until the TrueType font has been parsed, or
// if it can't be, faces come from a built-in bitmap font.
type Fonts struct {
	mu       sync.RWMutex
	source   *text.GoTextFaceSource
	fallback text.Face
	err      error

	version atomic.Uint64
	done    chan struct{}
}

// NewFallbackFonts returns a provider that only ever uses the fallback face
func NewFallbackFonts() *Fonts {
	f := &Fonts{
		fallback: text.NewGoXFace(basicfont.Face7x13),
		done:     make(chan struct{}),
	}
	close(f.done)
	return f
}

// LoadFontAsync starts reading path from fsys in the background
func LoadFontAsync(fsys fs.FS, path string) *Fonts {
	f := &Fonts{
		fallback: text.NewGoXFace(basicfont.Face7x13),
		done:     make(chan struct{}),
	}
	go f.load(fsys, path)
	return f
}

func (f *Fonts) load(fsys fs.FS, path string) {
	defer close(f.done)

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		f.fail(fmt.Errorf("failed to read font %s: %w", path, err))
		return
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		f.fail(fmt.Errorf("failed to parse font %s: %w", path, err))
		return
	}

	f.mu.Lock()
	f.source = src
	f.mu.Unlock()
	f.version.Add(1)
	log.Printf("Loaded font %s", path)
}

func (f *Fonts) fail(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
	log.Printf("%v (using fallback font)", err)
}

// Face returns a face of the requested size
func (f *Fonts) Face(size float64) text.Face {
	f.mu.RLock()
	src := f.source
	f.mu.RUnlock()

	if src == nil {
		return f.fallback
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// Version is bumped once the real font replaces the fallback
func (f *Fonts) Version() uint64 {
	return f.version.Load()
}

// Loaded reports whether the real font is in use
func (f *Fonts) Loaded() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.source != nil
}

// Wait blocks until loading finished and returns its error
func (f *Fonts) Wait() error {
	<-f.done
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.err
}
