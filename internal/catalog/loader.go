package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// Format is the encoding of a catalog file
type Format string

// Supported catalog formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed data/items.yaml
var defaultItems []byte

// File is the on-disk shape of a catalog
type File struct {
	Items []inventory.ItemDescriptor `json:"items" yaml:"items"`
}

// Load decodes a catalog file from r and builds the catalog
func Load(r io.Reader, format Format) (*Catalog, error) {
	var file File

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode JSON catalog")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && err != io.EOF {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode YAML catalog")
		}
	default:
		return nil, errors.InvalidArgumentf("unsupported catalog format %q", format)
	}

	return New(file.Items)
}

// LoadFile reads a catalog from path, choosing the format by extension
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer func() { _ = f.Close() }()

	c, err := Load(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", path)
	}
	return c, nil
}

// Default builds the catalog embedded in the binary
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultItems), FormatYAML)
}

// FormatFromPath maps a file extension to a catalog format
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.InvalidArgumentf("cannot infer catalog format from %q (want .json, .yaml or .yml)", path)
	}
}
