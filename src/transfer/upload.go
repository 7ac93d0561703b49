package transfer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"signal-sticker-tool/src/credentials"
	"signal-sticker-tool/src/manifest"
	"signal-sticker-tool/src/shareurl"
	"signal-sticker-tool/src/signalapi"
	"signal-sticker-tool/src/ui"
)

// Upload publishes the pack in dir through client. When a result file
// is already present the pack is considered uploaded: the recorded
// id/key are reprinted and no network call happens, so a pack is
// never published twice by accident.
func Upload(ctx context.Context, client signalapi.Client, dir, credsPath string, stdout io.Writer) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve pack directory: %w", err)
	}

	if ref, ok, err := LoadResult(absDir); err != nil {
		return err
	} else if ok {
		fmt.Fprintf(stdout, "Pack was already uploaded (found %s).\n", ResultFileName)
		printRef(stdout, ref)
		return nil
	}

	m, err := manifest.Load(absDir)
	if err != nil {
		return err
	}
	creds, err := credentials.Load(credsPath)
	if err != nil {
		return err
	}
	pack, err := buildPack(m)
	if err != nil {
		return err
	}

	ref, err := client.Upload(ctx, creds.Username, creds.Password, pack)
	if err != nil {
		return ui.Abortf("upload failed: %v", err)
	}
	if err := writeResult(absDir, ref); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Uploaded %q (%d stickers).\n", m.Meta.Title, len(m.Stickers))
	printRef(stdout, ref)
	return nil
}

// buildPack assembles the transfer-shaped pack: manifest order, ids
// sequential from 0, raw bytes read from the resolved paths. The
// cover, when present, gets the id after the last sticker.
func buildPack(m *manifest.Manifest) (signalapi.Pack, error) {
	pack := signalapi.Pack{Title: m.Meta.Title, Author: m.Meta.Author}
	for i, s := range m.Stickers {
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return signalapi.Pack{}, fmt.Errorf("read sticker image %s: %w", s.Path, err)
		}
		pack.Stickers = append(pack.Stickers, signalapi.Sticker{ID: i, Emoji: s.Chr, Image: data})
	}
	if m.Meta.CoverPath != "" {
		data, err := os.ReadFile(m.Meta.CoverPath)
		if err != nil {
			return signalapi.Pack{}, fmt.Errorf("read cover image %s: %w", m.Meta.CoverPath, err)
		}
		pack.Cover = &signalapi.Sticker{ID: len(m.Stickers), Image: data}
	}
	return pack, nil
}

func printRef(stdout io.Writer, ref signalapi.PackRef) {
	fmt.Fprintf(stdout, "Pack id:  %s\n", ref.ID)
	fmt.Fprintf(stdout, "Pack key: %s\n", ref.Key)
	fmt.Fprintf(stdout, "Share URL: %s\n", shareurl.WebURL(ref.ID, ref.Key))
	fmt.Fprintf(stdout, "Deep link: %s\n", shareurl.DeepLink(ref.ID, ref.Key))
}
