package cli

import "signal-sticker-tool/src/signalapi"

// newClient builds the transfer client for the network commands.
// Tests swap it for a fake.
var newClient = func() (signalapi.Client, error) {
	return signalapi.NewHelperClient()
}

// SetClientForTest replaces the transfer client constructor and
// returns a restore function.
func SetClientForTest(fn func() (signalapi.Client, error)) func() {
	prev := newClient
	newClient = fn
	return func() { newClient = prev }
}
