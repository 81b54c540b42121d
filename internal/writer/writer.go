// Package writer renders theme templates and writes the resulting
// files, skipping outputs whose cached digests are still current.
package writer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"

	"hadalized/internal/cache"
	"hadalized/internal/config"
	"hadalized/internal/logger"
	"hadalized/internal/palette"
	"hadalized/internal/templates"
	"hadalized/pkg/diff"
	"hadalized/pkg/errors"
)

// digestSep joins the template source and the context JSON inside the
// digest input.
const digestSep = ":::"

// Diff pairs an output path with the unified diff a dry run produced
// for it.
type Diff struct {
	Path  string
	Patch string
}

// Writer compiles theme files from templates and palette data. One
// Writer owns one configuration graph for its lifetime and is not safe
// for concurrent use.
type Writer struct {
	cfg      *config.Config
	cache    *cache.Cache
	loader   *templates.Loader
	log      *logger.Logger
	buildDir string
	parsed   bool

	// Template parses are memoized for the session so a directive set
	// sharing a template loads it once.
	templates map[string]*templates.Template
	diffs     []Diff
}

// New prepares a writer session: it resolves the template loader from
// the options and connects the cache unless caching is disabled or the
// run is dry. Callers must pair a successful New with Close.
func New(cfg *config.Config, log *logger.Logger) (*Writer, error) {
	userDir := ""
	if cfg.UseTemplates() {
		userDir = cfg.TemplateDir
	}

	w := &Writer{
		cfg:       cfg,
		cache:     cache.New(cfg.CacheDir, cfg.CacheInMemory),
		loader:    templates.NewLoader(userDir),
		log:       log,
		buildDir:  cfg.BuildDir(),
		templates: make(map[string]*templates.Template),
	}

	if cfg.UseCache() && !cfg.DryRun {
		if err := w.cache.Connect(); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Close releases the cache connection. Safe to call on a writer whose
// cache never connected.
func (w *Writer) Close() error {
	return w.cache.Close()
}

// Diffs returns the unified diffs collected by a dry run, in the order
// the outputs would have been written.
func (w *Writer) Diffs() []Diff {
	return w.diffs
}

// Run builds every directive in declaration order, honoring the
// include_builds filter, and returns all written paths.
func (w *Writer) Run() ([]string, error) {
	var written []string
	for _, d := range w.cfg.Builds {
		if !w.buildIncluded(d.Name) {
			continue
		}
		paths, err := w.Build(d)
		if err != nil {
			return written, err
		}
		written = append(written, paths...)
	}
	return written, nil
}

// Build renders one directive for every matching context and returns
// the paths written under the build directory.
func (w *Writer) Build(d config.BuildDirective) ([]string, error) {
	if err := w.ensureParsed(); err != nil {
		return nil, err
	}
	tmpl, err := w.template(d.Template)
	if err != nil {
		return nil, err
	}

	w.log.WithFields(map[string]any{"app": d.Name, "template": d.Template}).
		Info("handling themes")

	var written []string
	if d.ContextType == config.ContextFull {
		projected, err := w.cfg.Project(d.ColorType)
		if err != nil {
			return nil, err
		}
		// The digest covers only the data the template can see change:
		// palettes, builds, and terminal mapping.
		path, wrote, err := w.render(d, tmpl, d.Name, projected, projected.Fingerprint())
		if err != nil {
			return nil, err
		}
		if wrote {
			written = append(written, path)
		}
		return written, nil
	}

	for _, key := range w.cfg.PaletteNames() {
		p := w.cfg.Palettes[key]
		if !w.paletteIncluded(key, p) {
			continue
		}
		projected, err := p.Project(d.ColorType)
		if err != nil {
			return nil, err
		}
		path, wrote, err := w.render(d, tmpl, p.Name, projected, projected)
		if err != nil {
			return nil, err
		}
		if wrote {
			written = append(written, path)
		}
	}
	return written, nil
}

// render produces one output file for a directive and context. It
// returns the output path and whether the file was (or, on a dry run,
// would be) written.
func (w *Writer) render(d config.BuildDirective, tmpl *templates.Template, ctxName string, renderCtx, digestCtx any) (string, bool, error) {
	relPath := d.FormatPath(ctxName)
	path := filepath.Join(w.buildDir, relPath)

	dig, err := fingerprint(tmpl, digestCtx)
	if err != nil {
		return path, false, err
	}

	if w.skip(path, dig) {
		w.log.WithFields(map[string]any{"path": relPath, "digest": dig}).
			Debug("output is current, skipping write")
		if err := w.copy(relPath); err != nil {
			return path, false, err
		}
		return path, false, nil
	}

	text, err := tmpl.Render(renderCtx)
	if err != nil {
		return path, false, err
	}

	if w.cfg.DryRun {
		return path, w.preview(relPath, path, []byte(text)), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, false, errors.NewIOError("create build dir", filepath.Dir(path), err)
	}
	w.log.WithFields(map[string]any{"path": relPath, "digest": dig}).
		Info("writing theme file")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return path, false, errors.NewIOError("write theme file", path, err)
	}

	if w.cfg.UseCache() {
		// The file is already on disk; a failed digest record only
		// costs a rebuild next run.
		if err := w.cache.Add(path, dig); err != nil {
			w.log.WithFields(map[string]any{"path": relPath, "error": err.Error()}).
				Warn("could not record output digest")
		}
	}
	if err := w.copy(relPath); err != nil {
		return path, false, err
	}
	return path, true, nil
}

// preview records what a real run would change at path, diffing the
// pending render against whatever is on disk.
func (w *Writer) preview(relPath, path string, pending []byte) bool {
	current, err := os.ReadFile(path)
	if err != nil {
		current = nil
	}

	patch := diff.Unified(current, pending, relPath)
	if patch == "" {
		w.log.WithFields(map[string]any{"path": relPath}).
			Debug("output is current")
		return false
	}

	w.log.WithFields(map[string]any{"path": relPath}).
		Info("would write theme file")
	w.diffs = append(w.diffs, Diff{Path: relPath, Patch: patch})
	return true
}

// copy mirrors a built file into the configured output directory.
// Prefix keeps the build subdirectory; otherwise files are flattened.
func (w *Writer) copy(relPath string) error {
	if w.cfg.OutputDir == "" || w.cfg.DryRun {
		return nil
	}

	src := filepath.Join(w.buildDir, relPath)
	dst := filepath.Join(w.cfg.OutputDir, filepath.Base(relPath))
	if w.cfg.Prefix {
		dst = filepath.Join(w.cfg.OutputDir, relPath)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.NewIOError("create output dir", filepath.Dir(dst), err)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return errors.NewIOError("read built file", src, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return errors.NewIOError("copy theme file", dst, err)
	}

	w.log.WithFields(map[string]any{"src": relPath, "dst": dst}).
		Debug("copied theme file")
	return nil
}

// skip reports whether path is already current: caching enabled, not
// forced, file present on disk, and the stored digest unchanged.
func (w *Writer) skip(path, digest string) bool {
	if !w.cfg.UseCache() || w.cfg.Force || w.cfg.DryRun {
		return false
	}
	if _, err := os.Stat(path); err != nil {
		return false
	}
	stored, ok, err := w.cache.Get(path)
	if err != nil || !ok {
		return false
	}
	return stored == digest
}

// ensureParsed expands every palette once per session.
func (w *Writer) ensureParsed() error {
	if w.parsed {
		return nil
	}
	parsed, err := w.cfg.ParsePalettes()
	if err != nil {
		return err
	}
	w.cfg = parsed
	w.parsed = true
	return nil
}

// template loads a template through the session memo.
func (w *Writer) template(name string) (*templates.Template, error) {
	if t, ok := w.templates[name]; ok {
		return t, nil
	}
	t, err := w.loader.Load(name)
	if err != nil {
		return nil, err
	}
	w.templates[name] = t
	return t, nil
}

// buildIncluded applies the include_builds filter to a directive name.
func (w *Writer) buildIncluded(name string) bool {
	if len(w.cfg.IncludeBuilds) == 0 {
		return true
	}
	for _, inc := range w.cfg.IncludeBuilds {
		if inc == name {
			return true
		}
	}
	return false
}

// paletteIncluded applies the include_palettes filter; entries match a
// palette's map key, name, or any alias.
func (w *Writer) paletteIncluded(key string, p *palette.Palette) bool {
	if len(w.cfg.IncludePalettes) == 0 {
		return true
	}
	for _, inc := range w.cfg.IncludePalettes {
		if inc == key || inc == p.Name {
			return true
		}
		for _, alias := range p.Aliases {
			if inc == alias {
				return true
			}
		}
	}
	return false
}

// fingerprint digests a (template, context) pair so the cache reacts
// to both template edits and data edits.
func fingerprint(tmpl *templates.Template, context any) (string, error) {
	data, err := json.Marshal(context)
	if err != nil {
		return "", fmt.Errorf("encode context: %w", err)
	}

	input := make([]byte, 0, len(tmpl.Source())+len(digestSep)+len(data))
	input = append(input, tmpl.Source()...)
	input = append(input, digestSep...)
	input = append(input, data...)

	sum := blake2b.Sum256(input)
	return hex.EncodeToString(sum[:]), nil
}
