package utils

// FetchEntry is one item of a YAML manifest overriding the default UCD file
// list.
type FetchEntry struct {
	Path string `yaml:"path"`
}
