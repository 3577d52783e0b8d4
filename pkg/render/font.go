package render

import (
	"github.com/charmbracelet/log"
	"github.com/flopp/go-findfont"
	"github.com/gogpu/gg/text"
)

// Font candidates tried in order when no explicit path is given. DejaVu
// ships with most Linux distributions; the rest cover macOS and Windows.
var (
	regularFonts = []string{
		"DejaVuSans.ttf",
		"LiberationSans-Regular.ttf",
		"Arial.ttf",
		"Helvetica.ttf",
	}
	boldFonts = []string{
		"DejaVuSans-Bold.ttf",
		"LiberationSans-Bold.ttf",
		"Arial Bold.ttf",
		"Helvetica-Bold.ttf",
	}
)

type faceKey struct {
	size float64
	bold bool
}

// fontSet owns the regular and bold font sources plus a face cache so
// repeated draws at the same size reuse shaping state. A nil or empty
// fontSet degrades to geometry-only rendering.
type fontSet struct {
	regular *text.FontSource
	bold    *text.FontSource
	faces   map[faceKey]text.Face
}

// loadFonts locates the fonts for a render call. Missing fonts are not
// an error: output dimensions and geometry are unaffected, so the
// renderer keeps going and reports the degradation through the logger.
func loadFonts(explicit string, logger *log.Logger) *fontSet {
	fs := &fontSet{faces: make(map[faceKey]text.Face)}

	if explicit != "" {
		src, err := text.NewFontSourceFromFile(explicit)
		if err != nil {
			logger.Warn("cannot load font, text will be skipped", "path", explicit, "err", err)
			return fs
		}
		fs.regular = src
		fs.bold = src
		return fs
	}

	fs.regular = findFirst(regularFonts)
	fs.bold = findFirst(boldFonts)
	if fs.bold == nil {
		fs.bold = fs.regular
	}
	if fs.regular == nil {
		logger.Warn("no system font found, text will be skipped")
	}
	return fs
}

func findFirst(names []string) *text.FontSource {
	for _, name := range names {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			continue
		}
		return src
	}
	return nil
}

// face returns a cached face for the size, or nil when no font loaded.
func (fs *fontSet) face(size float64, bold bool) text.Face {
	src := fs.regular
	if bold {
		src = fs.bold
	}
	if src == nil {
		return nil
	}
	key := faceKey{size: size, bold: bold}
	if f, ok := fs.faces[key]; ok {
		return f
	}
	f := src.Face(size)
	fs.faces[key] = f
	return f
}
