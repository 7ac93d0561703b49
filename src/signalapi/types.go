package signalapi

import "context"

// Sticker is one image of a transfer-shaped pack.
type Sticker struct {
	ID    int
	Emoji string
	Image []byte
}

// Pack is the shape exchanged with the sticker service client. It
// exists only at this boundary; the rest of the tool works on the
// manifest and plain files.
type Pack struct {
	Title    string
	Author   string
	Stickers []Sticker
	Cover    *Sticker
}

// PackRef identifies a published pack: its remote id and the pack key
// needed to decrypt it.
type PackRef struct {
	ID  string
	Key string
}

// Client is the narrow interface over the external protocol client.
// The wire protocol and pack encryption live behind it; this tool
// treats both operations as opaque. Keep it small so it stays
// mockable.
type Client interface {
	Upload(ctx context.Context, username, password string, pack Pack) (PackRef, error)
	Download(ctx context.Context, id, key string) (Pack, error)
}
