package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io/fs"
	"strings"
)

// Path returns the image path for a body, e.g. "Earth" -> "planets/earth.png".
func Path(name string) string {
	return "planets/" + strings.ToLower(name) + ".png"
}

// LoadImages decodes the image for every named body from fsys. Any missing
// or undecodable file fails the whole load.
func LoadImages(fsys fs.FS, names []string) (map[string]image.Image, error) {
	images := make(map[string]image.Image, len(names))
	for _, name := range names {
		path := Path(name)
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read image for %s: %w", name, err)
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		images[name] = img
	}
	return images, nil
}
