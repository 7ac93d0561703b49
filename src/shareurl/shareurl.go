package shareurl

import (
	"fmt"
	"net/url"
	"strings"

	"signal-sticker-tool/src/ui"
)

// ShareHost is the only host accepted in sharing URLs.
const ShareHost = "signal.art"

// MinKeyLength is the shortest pack key accepted when the id and key
// are supplied directly instead of inside a sharing URL.
const MinKeyLength = 16

// WebURL renders the public sharing link for a pack.
func WebURL(id, key string) string {
	return fmt.Sprintf("https://%s/addstickers/#pack_id=%s&pack_key=%s", ShareHost, id, key)
}

// DeepLink renders the app deep link that opens the pack directly in
// Signal.
func DeepLink(id, key string) string {
	return fmt.Sprintf("sgnl://addstickers/?pack_id=%s&pack_key=%s", id, key)
}

// Resolve turns the download command arguments into a pack id and
// key. arg is either a sharing URL (the key argument must then be
// empty) or a bare pack id accompanied by the key.
func Resolve(arg, key string) (string, string, error) {
	if strings.Contains(arg, "://") {
		if key != "" {
			return "", "", ui.Abortf("pass either a sharing URL or an id and key, not both")
		}
		return parseShareURL(arg)
	}
	if key == "" {
		return "", "", ui.Abortf("a pack key is required when passing a bare pack id")
	}
	if len(key) < MinKeyLength {
		return "", "", ui.Abortf("pack key is too short (%d characters, need at least %d)", len(key), MinKeyLength)
	}
	return arg, key, nil
}

// parseShareURL extracts pack_id and pack_key from the URL fragment
// of https://signal.art/addstickers/#pack_id=...&pack_key=...
func parseShareURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", ui.Abortf("malformed sharing URL %q: %v", raw, err)
	}
	if !strings.EqualFold(u.Host, ShareHost) {
		return "", "", ui.Abortf("unexpected host %q in sharing URL (expected %s)", u.Host, ShareHost)
	}
	params, err := url.ParseQuery(u.Fragment)
	if err != nil {
		return "", "", ui.Abortf("malformed sharing URL fragment %q: %v", u.Fragment, err)
	}
	id := params.Get("pack_id")
	key := params.Get("pack_key")
	if id == "" || key == "" {
		return "", "", ui.Abortf("sharing URL is missing pack_id or pack_key")
	}
	return id, key, nil
}
