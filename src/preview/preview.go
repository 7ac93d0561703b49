package preview

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"signal-sticker-tool/src/manifest"
)

// FileName is the preview document written into the pack directory.
const FileName = "preview.html"

//go:embed preview.gohtml
var templateText string

// html/template escapes every interpolated manifest string, which is
// what keeps hostile titles and filenames inert in the output.
var tmpl = template.Must(template.New("preview").Parse(templateText))

type stickerView struct {
	File  string
	Emoji string
}

type pageData struct {
	Title    string
	Author   string
	Cover    string
	Stickers []stickerView
}

// Render writes the static preview for m into destDir, overwriting
// any previous preview, and returns the written path. When the
// manifest has no cover the first sticker stands in for display only;
// nothing is persisted back.
func Render(m *manifest.Manifest, destDir string) (string, error) {
	data := pageData{
		Title:  m.Meta.Title,
		Author: m.Meta.Author,
		Cover:  m.Meta.Cover,
	}
	if data.Cover == "" && len(m.Stickers) > 0 {
		data.Cover = m.Stickers[0].File
	}
	for _, s := range m.Stickers {
		data.Stickers = append(data.Stickers, stickerView{File: s.File, Emoji: s.Chr})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	path := filepath.Join(destDir, FileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write preview: %w", err)
	}
	return path, nil
}
