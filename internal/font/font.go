package font

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/ZacxDev/shorts-renderer/internal/language"
	"github.com/ZacxDev/shorts-renderer/pkg/types"
)

// defaultFontKey is the bundled font used when a language has no bundled
// font of its own.
const defaultFontKey = "NotoSans-Bold.ttf"

// systemFallbacks are tried last, in order, when nothing bundled exists.
var systemFallbacks = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/truetype/noto/NotoSans-Bold.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
}

// Resolver finds a usable font file for a language. Resolution order,
// first existing file wins:
//
//  1. the explicit style-configured path
//  2. the language's bundled font under the fonts directory
//  3. the bundled latin default
//  4. a small set of system font locations
//
// Results are cached; for fixed filesystem state the same language always
// resolves to the same path.
type Resolver struct {
	fontsDir string

	mu    sync.Mutex
	cache map[string]string
}

// NewResolver creates a font resolver rooted at fontsDir (may be empty,
// which skips the bundled candidates).
func NewResolver(fontsDir string) *Resolver {
	return &Resolver{
		fontsDir: fontsDir,
		cache:    make(map[string]string),
	}
}

// Resolve returns the font file to use for a language. The explicit path
// comes from the resolved style config and may be empty. Returns
// types.ErrNoFontAvailable when every candidate is absent.
func (r *Resolver) Resolve(lang language.Language, explicit string) (string, error) {
	key := lang.Code() + "\x00" + explicit

	r.mu.Lock()
	if cached, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return cached, nil
	}
	r.mu.Unlock()

	path, err := r.resolve(lang, explicit)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.cache[key] = path
	r.mu.Unlock()
	return path, nil
}

func (r *Resolver) resolve(lang language.Language, explicit string) (string, error) {
	candidates := make([]string, 0, 3+len(systemFallbacks))
	if explicit != "" {
		candidates = append(candidates, explicit)
	}
	if r.fontsDir != "" {
		candidates = append(candidates,
			filepath.Join(r.fontsDir, lang.FontKey()),
			filepath.Join(r.fontsDir, defaultFontKey),
		)
	}
	candidates = append(candidates, systemFallbacks...)

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Wrapf(types.ErrNoFontAvailable, "language %s (checked %d candidates)", lang.Code(), len(candidates))
}
