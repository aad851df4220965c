package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/seriescoord/pkg/errors"
)

// Fixture formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// FormatFromPath returns the fixture format implied by a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported fixture extension %q (expected .toml or .json)", filepath.Ext(path))
}

// Decode reads a chart in the given format from r. Decode does not close r.
func Decode(r io.Reader, format string) (*Chart, error) {
	var c Chart
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported fixture format %q", format)
	}
	return &c, nil
}

// Load reads the chart fixture at path. The format follows the extension.
func Load(path string) (*Chart, error) {
	if err := errors.ValidateFixturePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return c, nil
}

// WriteJSON encodes a chart as indented JSON. The output can be read back
// with Decode.
func WriteJSON(c *Chart, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
