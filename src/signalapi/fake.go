package signalapi

import (
	"context"
	"fmt"
)

// FakeClient is an in-memory implementation for unit tests.
type FakeClient struct {
	Packs map[string]Pack // keyed by pack id

	NextID  string
	NextKey string

	UploadCalls   int
	DownloadCalls int

	// Err, when set, is returned by both operations.
	Err error
}

func NewFake() *FakeClient {
	return &FakeClient{Packs: map[string]Pack{}, NextID: "fake-id", NextKey: "fake-key"}
}

func (f *FakeClient) Upload(_ context.Context, username, password string, pack Pack) (PackRef, error) {
	f.UploadCalls++
	if f.Err != nil {
		return PackRef{}, f.Err
	}
	if username == "" || password == "" {
		return PackRef{}, fmt.Errorf("missing credentials")
	}
	ref := PackRef{ID: f.NextID, Key: f.NextKey}
	f.Packs[ref.ID] = pack
	return ref, nil
}

func (f *FakeClient) Download(_ context.Context, id, key string) (Pack, error) {
	f.DownloadCalls++
	if f.Err != nil {
		return Pack{}, f.Err
	}
	pack, ok := f.Packs[id]
	if !ok {
		return Pack{}, &NotFoundError{ID: id}
	}
	return pack, nil
}

// NotFoundError mimics the service rejecting an unknown pack id.
type NotFoundError struct{ ID string }

func (e *NotFoundError) Error() string { return "pack not found: " + e.ID }
