package manifest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"signal-sticker-tool/src/packdir"
	"signal-sticker-tool/src/ui"
)

// BuildOptions control how Build composes the manifest.
type BuildOptions struct {
	// Title and Author override the corresponding meta fields; empty
	// values fall back to the previous manifest, then to placeholders.
	Title  string
	Author string
	// CoverStem selects the cover image by filename stem.
	CoverStem string
	// EmojiSource, when non-nil, supplies one emoji per non-blank
	// line, matched positionally against the sorted sticker files.
	EmojiSource io.Reader
	// Update permits rewriting an existing manifest.
	Update bool
}

// Build scans dir and writes its manifest, merging in any previous
// manifest non-destructively: prior title/author/emoji assignments are
// reused for fields the caller left unspecified, and unrecognized
// top-level keys of the old document survive the rewrite. Rerunning
// with Update set and an unchanged directory reproduces the file
// byte for byte.
func Build(dir string, opts BuildOptions) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve pack directory: %w", err)
	}
	path := filepath.Join(absDir, FileName)

	doc := map[string]any{}
	prior := rawManifest{}
	if data, err := os.ReadFile(path); err == nil {
		if !opts.Update {
			return ui.Abortf("manifest %s already exists (use -u to update it)", path)
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return ui.Abortf("manifest %s is not valid YAML: %v", path, err)
		}
		// Tolerate shape errors here: a prior document that does not
		// decode cleanly simply contributes nothing to the merge.
		_ = yaml.Unmarshal(data, &prior)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read manifest: %w", err)
	}

	listing, err := packdir.Scan(absDir, opts.CoverStem, opts.EmojiSource)
	if err != nil {
		return err
	}
	if len(listing.Stickers) == 0 {
		return ui.Abortf("no sticker image files found in %s", absDir)
	}

	var prevTitle, prevAuthor, prevCover string
	if prior.Meta != nil {
		prevTitle = trimmed(prior.Meta.Title)
		prevAuthor = trimmed(prior.Meta.Author)
		prevCover = trimmed(prior.Meta.Cover)
	}
	meta := Meta{
		Title:  firstNonEmpty(opts.Title, prevTitle, PlaceholderTitle),
		Author: firstNonEmpty(opts.Author, prevAuthor, PlaceholderAuthor),
		Cover:  firstNonEmpty(listing.Cover, prevCover),
	}

	priorEmojis := map[string]string{}
	for _, s := range prior.Stickers {
		if s.File != nil && s.Chr != nil {
			priorEmojis[*s.File] = *s.Chr
		}
	}

	stickers := make([]Sticker, 0, len(listing.Stickers))
	for _, entry := range listing.Stickers {
		emoji := entry.Emoji
		if emoji == "" {
			emoji = priorEmojis[entry.File]
		}
		stickers = append(stickers, Sticker{Chr: emoji, File: entry.File})
	}

	doc["meta"] = meta
	doc["stickers"] = stickers
	return WriteDocument(path, doc, false)
}

// WriteDocument marshals doc as YAML to path. With exclusive set the
// write fails if path already exists.
func WriteDocument(path string, doc map[string]any, exclusive bool) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if exclusive {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if exclusive && os.IsExist(err) {
			return ui.Abortf("manifest %s already exists; delete it to generate a new one", path)
		}
		return fmt.Errorf("write manifest: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write manifest: %w", err)
	}
	return f.Close()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
