// Package fonts provides lazily parsed, size-cached font faces for
// the UI. Faces fall back to the fixed 7x13 bitmap face when parsing
// fails, so text always renders.
package fonts

import (
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fontKey struct {
	family string
	size   float64
}

var (
	mu      sync.Mutex
	parsed  = map[string]*opentype.Font{}
	faces   = map[fontKey]font.Face{}
	sources = map[string][]byte{
		"regular": goregular.TTF,
		"bold":    gobold.TTF,
		"mono":    gomono.TTF,
	}
)

func face(family string, size float64) font.Face {
	mu.Lock()
	defer mu.Unlock()
	key := fontKey{family, size}
	if f, ok := faces[key]; ok {
		return f
	}
	ft, ok := parsed[family]
	if !ok {
		src, found := sources[family]
		if !found {
			src = goregular.TTF
		}
		var err error
		ft, err = opentype.Parse(src)
		if err != nil {
			log.Printf("fonts: parse %s: %v", family, err)
			faces[key] = basicfont.Face7x13
			return basicfont.Face7x13
		}
		parsed[family] = ft
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("fonts: face %s %v: %v", family, size, err)
		faces[key] = basicfont.Face7x13
		return basicfont.Face7x13
	}
	faces[key] = f
	return f
}

// Regular returns the default UI face at the given size.
func Regular(size float64) font.Face { return face("regular", size) }

// Bold returns the heading face at the given size.
func Bold(size float64) font.Face { return face("bold", size) }

// Mono returns the monospace face used for numeric readouts and the
// binary rain.
func Mono(size float64) font.Face { return face("mono", size) }
