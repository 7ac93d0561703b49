package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"signal-sticker-tool/src/packdir"
	"signal-sticker-tool/src/ui"
)

// Cover stem used by getstickerpack.com dumps.
const bootstrapCoverStem = "tray"

// Overflow placeholder once the sequential emoji alphabet runs out.
const emojiPlaceholder = "put_emoji_here"

var bootstrapEmojis = "0123456789abcdefghijklmnopqrstuvwxyz"

var stickerNumberRe = regexp.MustCompile(`^sticker_([0-9]+)\.`)

// Bootstrap generates a manifest for a pack directory downloaded from
// getstickerpack.com. Title and author come from title.txt/author.txt
// when present, the cover is the "tray" image, sticker_<n> files are
// ordered numerically (sticker_9 before sticker_10), and each sticker
// gets a sequential placeholder emoji to be edited afterwards. The
// manifest is created exclusively; an existing one is never replaced.
func Bootstrap(dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve pack directory: %w", err)
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return fmt.Errorf("read pack directory: %w", err)
	}

	// getstickerpack serves png and webp only.
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if strings.HasSuffix(lower, ".png") || strings.HasSuffix(lower, ".webp") {
			names = append(names, e.Name())
		}
	}

	cover := ""
	var files []string
	for _, name := range sortedCopy(names) {
		if packdir.Stem(name) == bootstrapCoverStem {
			if cover == "" {
				cover = name
			}
			continue
		}
		files = append(files, name)
	}
	if len(files) == 0 {
		return ui.Abortf("no png or webp files found in %s", absDir)
	}

	meta := Meta{
		Title:  readInfoFile(absDir, "title.txt"),
		Author: readInfoFile(absDir, "author.txt"),
		Cover:  cover,
	}
	if meta.Title == "" {
		meta.Title = filepath.Base(absDir)
	}
	if meta.Title == "" || meta.Title == string(filepath.Separator) || meta.Title == "." {
		meta.Title = PlaceholderTitle
	}
	if meta.Author == "" {
		meta.Author = PlaceholderAuthor
	}

	stickers := make([]Sticker, 0, len(files))
	for i, file := range naturalOrder(files) {
		emoji := emojiPlaceholder
		if i < len(bootstrapEmojis) {
			emoji = string(bootstrapEmojis[i])
		}
		stickers = append(stickers, Sticker{Chr: emoji, File: file})
	}

	doc := map[string]any{"meta": meta, "stickers": stickers}
	return WriteDocument(filepath.Join(absDir, FileName), doc, true)
}

// naturalOrder sorts sticker_<n> names by their number so sticker_9
// lands before sticker_10; anything else keeps lexical order at the
// end.
func naturalOrder(files []string) []string {
	numbered := map[int]string{}
	var keys []int
	var rest []string
	for _, f := range files {
		m := stickerNumberRe.FindStringSubmatch(f)
		if m == nil {
			rest = append(rest, f)
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			rest = append(rest, f)
			continue
		}
		if _, dup := numbered[n]; dup {
			// sticker_42.png next to sticker_42.webp; keep the first.
			rest = append(rest, f)
			continue
		}
		numbered[n] = f
		keys = append(keys, n)
	}
	sort.Ints(keys)
	out := make([]string, 0, len(files))
	for _, k := range keys {
		out = append(out, numbered[k])
	}
	return append(out, rest...)
}

// readInfoFile returns the trimmed contents of name in dir, or empty.
func readInfoFile(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func sortedCopy(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}
