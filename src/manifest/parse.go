package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"signal-sticker-tool/src/ui"
)

// Optional-field shapes for the initial decode. Every field is a
// pointer so presence can be checked before use; the document is
// dynamic and nothing may be assumed to exist.
type rawSticker struct {
	Chr  *string `yaml:"chr"`
	File *string `yaml:"file"`
}

type rawMeta struct {
	Title  *string `yaml:"title"`
	Author *string `yaml:"author"`
	Cover  *string `yaml:"cover"`
}

type rawManifest struct {
	Meta     *rawMeta     `yaml:"meta"`
	Stickers []rawSticker `yaml:"stickers"`
}

// Load reads and validates the manifest in dir, resolving every file
// reference to an absolute path. The file itself is never written.
func Load(dir string) (*Manifest, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve pack directory: %w", err)
	}
	path := filepath.Join(absDir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ui.Abortf("no manifest found at %s (run 'init' to create one)", path)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var raw rawManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, ui.Abortf("manifest %s is not valid YAML: %v", path, err)
	}

	m, err := validate(raw, absDir)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// validate enforces the manifest invariants and resolves paths.
func validate(raw rawManifest, dir string) (*Manifest, error) {
	if raw.Meta == nil {
		return nil, definitionError("'meta' section is missing")
	}
	title := trimmed(raw.Meta.Title)
	if title == "" {
		return nil, definitionError("'meta.title' is missing or empty")
	}
	author := trimmed(raw.Meta.Author)
	if author == "" {
		return nil, definitionError("'meta.author' is missing or empty")
	}
	if len(raw.Stickers) == 0 {
		return nil, definitionError("'stickers' list is missing or empty")
	}

	m := &Manifest{
		Meta: Meta{Title: title, Author: author},
		Dir:  dir,
	}

	if cover := trimmed(raw.Meta.Cover); cover != "" {
		coverPath, err := resolveFile(dir, cover)
		if err != nil {
			return nil, err
		}
		m.Meta.Cover = cover
		m.Meta.CoverPath = coverPath
	}

	for i, s := range raw.Stickers {
		if s.File == nil || strings.TrimSpace(*s.File) == "" {
			return nil, definitionError(fmt.Sprintf("sticker #%d has no 'file'", i+1))
		}
		file := strings.TrimSpace(*s.File)
		path, err := resolveFile(dir, file)
		if err != nil {
			return nil, err
		}
		chr := ""
		if s.Chr != nil {
			chr = *s.Chr
		}
		m.Stickers = append(m.Stickers, Sticker{Chr: chr, File: file, Path: path})
	}

	return m, nil
}

// resolveFile joins name onto dir and requires the result to exist.
func resolveFile(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", definitionError(fmt.Sprintf("file not found: %s", path))
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	return path, nil
}

func definitionError(msg string) error {
	return ui.Abortf("invalid sticker pack definition: %s", msg)
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
