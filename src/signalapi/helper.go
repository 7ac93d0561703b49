package signalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"signal-sticker-tool/src/ui"
)

// HelperEnv names the environment variable that overrides helper
// binary discovery.
const HelperEnv = "SIGNAL_STICKERS_HELPER"

// HelperName is the helper binary looked up on PATH when HelperEnv is
// unset.
const HelperName = "signal-stickers-helper"

// passwordEnv carries the account password into the helper process.
// Passing it through the environment keeps it out of argv, which is
// world-readable on most systems.
const passwordEnv = "SIGNAL_PASSWORD"

// HelperClient implements Client by running the external protocol
// helper binary. The helper owns the wire protocol and the pack
// encryption; this adapter only frames packs as JSON on stdio.
type HelperClient struct {
	Path string
}

// NewHelperClient locates the helper binary via HelperEnv or PATH.
func NewHelperClient() (*HelperClient, error) {
	if path := strings.TrimSpace(os.Getenv(HelperEnv)); path != "" {
		return &HelperClient{Path: path}, nil
	}
	path, err := exec.LookPath(HelperName)
	if err != nil {
		return nil, ui.Abortf("sticker protocol helper %q not found on PATH (set %s to its location)", HelperName, HelperEnv)
	}
	return &HelperClient{Path: path}, nil
}

// JSON shapes exchanged with the helper. Image bytes travel base64
// encoded, which encoding/json does for []byte.
type helperSticker struct {
	ID    int    `json:"id"`
	Emoji string `json:"emoji"`
	Image []byte `json:"image"`
}

type helperPack struct {
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Stickers []helperSticker `json:"stickers"`
	Cover    *helperSticker  `json:"cover,omitempty"`
}

type helperRef struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

func (c *HelperClient) Upload(ctx context.Context, username, password string, pack Pack) (PackRef, error) {
	input, err := json.Marshal(toHelperPack(pack))
	if err != nil {
		return PackRef{}, fmt.Errorf("encode pack: %w", err)
	}
	out, err := c.run(ctx, input, password, "upload", "--username", username)
	if err != nil {
		return PackRef{}, err
	}
	var ref helperRef
	if err := json.Unmarshal(out, &ref); err != nil {
		return PackRef{}, fmt.Errorf("helper returned malformed upload result: %w", err)
	}
	if ref.ID == "" || ref.Key == "" {
		return PackRef{}, fmt.Errorf("helper returned incomplete upload result")
	}
	return PackRef{ID: ref.ID, Key: ref.Key}, nil
}

func (c *HelperClient) Download(ctx context.Context, id, key string) (Pack, error) {
	out, err := c.run(ctx, nil, "", "download", id, key)
	if err != nil {
		return Pack{}, err
	}
	var hp helperPack
	if err := json.Unmarshal(out, &hp); err != nil {
		return Pack{}, fmt.Errorf("helper returned malformed pack: %w", err)
	}
	return fromHelperPack(hp), nil
}

// run executes the helper with the given arguments, feeding input on
// stdin and returning stdout. Stderr is folded into the error.
func (c *HelperClient) run(ctx context.Context, input []byte, password string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Env = os.Environ()
	if password != "" {
		cmd.Env = append(cmd.Env, passwordEnv+"="+password)
	}
	if input != nil {
		cmd.Stdin = bytes.NewReader(input)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("helper %s failed: %s", args[0], msg)
	}
	return stdout.Bytes(), nil
}

func toHelperPack(pack Pack) helperPack {
	hp := helperPack{Title: pack.Title, Author: pack.Author}
	for _, s := range pack.Stickers {
		hp.Stickers = append(hp.Stickers, helperSticker{ID: s.ID, Emoji: s.Emoji, Image: s.Image})
	}
	if pack.Cover != nil {
		hp.Cover = &helperSticker{ID: pack.Cover.ID, Emoji: pack.Cover.Emoji, Image: pack.Cover.Image}
	}
	return hp
}

func fromHelperPack(hp helperPack) Pack {
	pack := Pack{Title: hp.Title, Author: hp.Author}
	for _, s := range hp.Stickers {
		pack.Stickers = append(pack.Stickers, Sticker{ID: s.ID, Emoji: s.Emoji, Image: s.Image})
	}
	if hp.Cover != nil {
		pack.Cover = &Sticker{ID: hp.Cover.ID, Emoji: hp.Cover.Emoji, Image: hp.Cover.Image}
	}
	return pack
}
