package cli_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"signal-sticker-tool/src/cli"
	"signal-sticker-tool/src/manifest"
	"signal-sticker-tool/src/preview"
	"signal-sticker-tool/src/signalapi"
	"signal-sticker-tool/src/transfer"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfakeimagedata")

func run(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	var out, errOut bytes.Buffer
	root := cli.NewRootCmd(stdin, &out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeImages(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), pngBytes, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func useFake(t *testing.T, fake *signalapi.FakeClient) {
	t.Helper()
	restore := cli.SetClientForTest(func() (signalapi.Client, error) { return fake, nil })
	t.Cleanup(restore)
}

func TestInitPreviewURLFlow(t *testing.T) {
	dir := t.TempDir()
	writeImages(t, dir, "a.png", "b.png")
	credsPath := filepath.Join(t.TempDir(), "credentials.yaml")

	if _, err := run(t, nil, "init", "-d", dir, "-T", "Pack", "-A", "Me"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); err != nil {
		t.Fatalf("manifest not written: %v", err)
	}

	if _, err := run(t, nil, "preview", "-d", dir); err != nil {
		t.Fatalf("preview: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, preview.FileName)); err != nil {
		t.Fatalf("preview not written: %v", err)
	}

	// url before any upload is an abort.
	if _, err := run(t, nil, "url", "-d", dir); err == nil {
		t.Fatalf("url without result file should fail")
	}

	fake := signalapi.NewFake()
	fake.NextID = "id123"
	fake.NextKey = "0123456789abcdef0123456789abcdef"
	useFake(t, fake)

	if _, err := run(t, strings.NewReader("user\npass\n"), "login", "-c", credsPath); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := run(t, nil, "upload", "-d", dir, "-c", credsPath); err != nil {
		t.Fatalf("upload: %v", err)
	}

	out, err := run(t, nil, "url", "-d", dir)
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	want := "https://signal.art/addstickers/#pack_id=id123&pack_key=" + fake.NextKey + "\n"
	if out != want {
		t.Fatalf("url output = %q, want %q", out, want)
	}
}

func TestInit_ReadEmojisFromStdin(t *testing.T) {
	dir := t.TempDir()
	writeImages(t, dir, "a.png", "b.png")

	if _, err := run(t, strings.NewReader("😀\n😂\n"), "init", "-d", dir, "-E"); err != nil {
		t.Fatalf("init -E: %v", err)
	}
	m, err := manifest.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Stickers[0].Chr != "😀" || m.Stickers[1].Chr != "😂" {
		t.Fatalf("unexpected emojis: %#v", m.Stickers)
	}
}

func TestInit_EmojiCountMismatchFails(t *testing.T) {
	dir := t.TempDir()
	writeImages(t, dir, "a.png", "b.png")

	if _, err := run(t, strings.NewReader("😀\n"), "init", "-d", dir, "-E"); err == nil {
		t.Fatalf("expected count-mismatch failure")
	}
	if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); !os.IsNotExist(err) {
		t.Fatalf("manifest should not exist after mismatch")
	}
}

func TestLoginLogout(t *testing.T) {
	credsPath := filepath.Join(t.TempDir(), "conf", "credentials.yaml")

	out, err := run(t, strings.NewReader("user\ns3cret\n"), "login", "-c", credsPath)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if strings.Contains(out, "s3cret") {
		t.Fatalf("password leaked into output:\n%s", out)
	}
	info, err := os.Stat(credsPath)
	if err != nil {
		t.Fatalf("credentials not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("credentials mode = %o, want 600", perm)
	}

	if _, err := run(t, nil, "logout", "-c", credsPath); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := os.Stat(credsPath); !os.IsNotExist(err) {
		t.Fatalf("credentials still present after logout")
	}
	// Logging out twice is fine.
	if _, err := run(t, nil, "logout", "-c", credsPath); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestLogin_EmptyUsername(t *testing.T) {
	credsPath := filepath.Join(t.TempDir(), "credentials.yaml")
	if _, err := run(t, strings.NewReader("\npass\n"), "login", "-c", credsPath); err == nil {
		t.Fatalf("expected empty-username failure")
	}
}

func TestDownloadCommand(t *testing.T) {
	fake := signalapi.NewFake()
	fake.Packs["abc"] = signalapi.Pack{
		Title: "Remote", Author: "Them",
		Stickers: []signalapi.Sticker{
			{ID: 0, Emoji: "🙂", Image: pngBytes},
			{ID: 1, Emoji: "🙃", Image: pngBytes},
		},
	}
	useFake(t, fake)
	dest := filepath.Join(t.TempDir(), "pack")

	url := "https://signal.art/addstickers/#pack_id=abc&pack_key=0123456789abcdef"
	if _, err := run(t, nil, "download", url, "-d", dest); err != nil {
		t.Fatalf("download: %v", err)
	}
	m, err := manifest.Load(dest)
	if err != nil {
		t.Fatalf("Load downloaded manifest: %v", err)
	}
	if m.Meta.Title != "Remote" || len(m.Stickers) != 2 {
		t.Fatalf("unexpected manifest: %#v", m)
	}
	if _, ok, _ := transfer.LoadResult(dest); !ok {
		t.Fatalf("result file missing after download")
	}
}

func TestDownload_BadKeyRejected(t *testing.T) {
	useFake(t, signalapi.NewFake())
	if _, err := run(t, nil, "download", "someid", "short", "-d", t.TempDir()); err == nil {
		t.Fatalf("expected short-key rejection")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, nil, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatalf("version output empty")
	}
}

func TestBootstrapCommand(t *testing.T) {
	dir := t.TempDir()
	writeImages(t, dir, "sticker_1.png", "sticker_2.png", "tray.png")

	if _, err := run(t, nil, "bootstrap", "-d", dir); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	m, err := manifest.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Meta.Cover != "tray.png" || len(m.Stickers) != 2 {
		t.Fatalf("unexpected bootstrap result: %#v", m)
	}
}
