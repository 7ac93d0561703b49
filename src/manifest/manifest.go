package manifest

// FileName is the manifest filename inside a pack directory.
const FileName = "stickers.yaml"

// Placeholder values written by the builder when neither an argument
// nor a previous manifest supplies the field.
const (
	PlaceholderTitle  = "fill-title-here"
	PlaceholderAuthor = "fill-author-name-here"
)

// Meta holds pack-level metadata.
type Meta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Cover  string `yaml:"cover,omitempty"`

	// CoverPath is the resolved absolute path of Cover. Set by the
	// validator, never serialized.
	CoverPath string `yaml:"-"`
}

// Sticker is one entry of the pack, in manifest order.
type Sticker struct {
	Chr  string `yaml:"chr"`
	File string `yaml:"file"`

	// Path is the resolved absolute path of File. Set by the
	// validator, never serialized.
	Path string `yaml:"-"`
}

// Manifest is a fully validated, path-resolved sticker pack
// definition.
type Manifest struct {
	Meta     Meta
	Stickers []Sticker

	// Dir is the absolute directory the manifest was loaded from.
	Dir string
}
