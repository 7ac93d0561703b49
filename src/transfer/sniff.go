package transfer

import "bytes"

// UnknownExtension is assigned when no signature matches.
const UnknownExtension = ".bin"

// SniffExtension inspects the leading bytes of downloaded image data
// and picks a filename extension. The service strips original names,
// so the format has to be recovered from the data itself.
func SniffExtension(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("GIF89")):
		return ".gif"
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return ".png"
	case bytes.HasPrefix(data, []byte("RIFF")):
		return ".webp"
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8}):
		// JPEG start-of-image marker.
		return ".jpg"
	case len(data) >= 10 && bytes.Equal(data[6:10], []byte("JFIF")):
		return ".jpg"
	default:
		return UnknownExtension
	}
}
