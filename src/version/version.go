package version

// Version is the current release of signal-sticker-tool.
// Overridden at build time via -ldflags "-X signal-sticker-tool/src/version.Version=...".
var Version = "0.4.0-dev"
