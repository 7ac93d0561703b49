package transfer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"signal-sticker-tool/src/manifest"
	"signal-sticker-tool/src/preview"
	"signal-sticker-tool/src/signalapi"
	"signal-sticker-tool/src/ui"
)

// Download fetches the pack id/key through client and materializes it
// in destDir: image files with sniffed extensions, a manifest with
// origin provenance, a preview, and a result file so the freshly
// downloaded pack is not re-uploaded by accident. An existing
// manifest at the destination aborts before any network traffic.
func Download(ctx context.Context, client signalapi.Client, id, key, destDir string, stdout io.Writer) error {
	absDir, err := filepath.Abs(destDir)
	if err != nil {
		return fmt.Errorf("resolve destination directory: %w", err)
	}
	manifestPath := filepath.Join(absDir, manifest.FileName)
	if _, err := os.Stat(manifestPath); err == nil {
		return ui.Abortf("manifest %s already exists; refusing to overwrite it", manifestPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat manifest: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	pack, err := client.Download(ctx, id, key)
	if err != nil {
		return ui.Abortf("download failed: %v", err)
	}
	if len(pack.Stickers) == 0 {
		return ui.Abortf("downloaded pack %s contains no stickers", id)
	}

	// Zero-padded sequential names: wide enough for the largest index.
	width := len(strconv.Itoa(len(pack.Stickers) - 1))
	stickers := make([]manifest.Sticker, 0, len(pack.Stickers))
	for i, s := range pack.Stickers {
		name := fmt.Sprintf("%0*d%s", width, i, SniffExtension(s.Image))
		if err := writeImage(filepath.Join(absDir, name), s.Image); err != nil {
			return err
		}
		stickers = append(stickers, manifest.Sticker{Chr: s.Emoji, File: name})
	}

	// Some packs carry blank metadata; keep the manifest valid.
	meta := manifest.Meta{Title: pack.Title, Author: pack.Author}
	if meta.Title == "" {
		meta.Title = manifest.PlaceholderTitle
	}
	if meta.Author == "" {
		meta.Author = manifest.PlaceholderAuthor
	}
	if pack.Cover != nil && len(pack.Cover.Image) > 0 {
		name := "cover" + SniffExtension(pack.Cover.Image)
		if err := writeImage(filepath.Join(absDir, name), pack.Cover.Image); err != nil {
			return err
		}
		meta.Cover = name
	}

	doc := map[string]any{
		"meta":     meta,
		"stickers": stickers,
		"origin":   map[string]string{"id": id, "key": key},
	}
	if err := manifest.WriteDocument(manifestPath, doc, true); err != nil {
		return err
	}

	m, err := manifest.Load(absDir)
	if err != nil {
		return err
	}
	if _, err := preview.Render(m, absDir); err != nil {
		return err
	}
	if err := writeResult(absDir, signalapi.PackRef{ID: id, Key: key}); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Downloaded %q (%d stickers) into %s\n", m.Meta.Title, len(m.Stickers), absDir)
	return nil
}

// writeImage stores image data with owner-only permissions, failing
// loudly when the name is already taken instead of clobbering it.
func writeImage(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return ui.Abortf("image file %s already exists; refusing to overwrite it", path)
		}
		return fmt.Errorf("write image %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write image %s: %w", path, err)
	}
	return f.Close()
}
