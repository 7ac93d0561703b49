package shareurl_test

import (
	"strings"
	"testing"

	"signal-sticker-tool/src/shareurl"
)

func TestResolve_ShareURL_OK(t *testing.T) {
	id, key, err := shareurl.Resolve("https://signal.art/addstickers/#pack_id=ABC&pack_key=DEF", "")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if id != "ABC" || key != "DEF" {
		t.Fatalf("got (%q, %q), want (ABC, DEF)", id, key)
	}
}

func TestResolve_WrongHost(t *testing.T) {
	_, _, err := shareurl.Resolve("https://example.com/addstickers/#pack_id=ABC&pack_key=DEF", "")
	if err == nil || !strings.Contains(err.Error(), "host") {
		t.Fatalf("expected host error, got %v", err)
	}
}

func TestResolve_MissingParams(t *testing.T) {
	if _, _, err := shareurl.Resolve("https://signal.art/addstickers/#pack_id=ABC", ""); err == nil {
		t.Fatalf("expected error for missing pack_key")
	}
}

func TestResolve_BareID_OK(t *testing.T) {
	id, key, err := shareurl.Resolve("someid", "0123456789abcdef")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if id != "someid" || key != "0123456789abcdef" {
		t.Fatalf("got (%q, %q)", id, key)
	}
}

func TestResolve_BareID_ShortKey(t *testing.T) {
	_, _, err := shareurl.Resolve("someid", "shortkey")
	if err == nil || !strings.Contains(err.Error(), "too short") {
		t.Fatalf("expected short-key error, got %v", err)
	}
}

func TestResolve_BareID_NoKey(t *testing.T) {
	if _, _, err := shareurl.Resolve("someid", ""); err == nil {
		t.Fatalf("expected error for missing key")
	}
}

func TestResolve_URLPlusKey(t *testing.T) {
	_, _, err := shareurl.Resolve("https://signal.art/addstickers/#pack_id=A&pack_key=B", "extra")
	if err == nil {
		t.Fatalf("expected error for URL plus key")
	}
}

func TestWebURL(t *testing.T) {
	got := shareurl.WebURL("ABC", "DEF")
	want := "https://signal.art/addstickers/#pack_id=ABC&pack_key=DEF"
	if got != want {
		t.Fatalf("WebURL = %q, want %q", got, want)
	}
}

func TestDeepLink(t *testing.T) {
	got := shareurl.DeepLink("ABC", "DEF")
	if got != "sgnl://addstickers/?pack_id=ABC&pack_key=DEF" {
		t.Fatalf("DeepLink = %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	id, key, err := shareurl.Resolve(shareurl.WebURL("id123", "key456"), "")
	if err != nil {
		t.Fatalf("Resolve(WebURL) error: %v", err)
	}
	if id != "id123" || key != "key456" {
		t.Fatalf("round trip mismatch: (%q, %q)", id, key)
	}
}
