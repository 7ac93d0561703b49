package packdir

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"signal-sticker-tool/src/ui"
)

// Entry is one image file discovered in a pack directory, together
// with its emoji assignment (empty when none was provided).
type Entry struct {
	File  string
	Emoji string
}

// Listing is the result of scanning a pack directory.
type Listing struct {
	Stickers []Entry
	Cover    string // cover filename, empty when no cover matched
}

// imageExtensions lists the recognized sticker image types.
var imageExtensions = map[string]struct{}{
	".png":  {},
	".webp": {},
	".gif":  {},
	".jpg":  {},
	".jpeg": {},
}

// IsImageFile reports whether name carries a recognized image
// extension (case-insensitive).
func IsImageFile(name string) bool {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return false
	}
	_, ok := imageExtensions[strings.ToLower(name[i:])]
	return ok
}

// Stem returns the filename portion before the first dot, the part
// cover matching operates on.
func Stem(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

// Scan enumerates dir, keeps recognized image files sorted by name,
// and sets aside the first file whose stem equals coverStem (later
// duplicates are ignored). When emojiSource is non-nil it reads one
// emoji token per non-blank line; the token count must equal the
// number of sticker files, since assignment is positional.
func Scan(dir, coverStem string, emojiSource io.Reader) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, fmt.Errorf("read pack directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var listing Listing
	for _, name := range names {
		if coverStem != "" && listing.Cover == "" && Stem(name) == coverStem {
			listing.Cover = name
			continue
		}
		listing.Stickers = append(listing.Stickers, Entry{File: name})
	}

	if emojiSource != nil {
		emojis, err := readEmojis(emojiSource)
		if err != nil {
			return Listing{}, err
		}
		if len(emojis) != len(listing.Stickers) {
			return Listing{}, ui.Abortf(
				"emoji count mismatch: %d emojis for %d sticker files",
				len(emojis), len(listing.Stickers))
		}
		for i := range listing.Stickers {
			listing.Stickers[i].Emoji = emojis[i]
		}
	}

	return listing, nil
}

// readEmojis collects the first token of every non-blank line.
func readEmojis(r io.Reader) ([]string, error) {
	var emojis []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		emojis = append(emojis, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read emoji input: %w", err)
	}
	return emojis, nil
}
