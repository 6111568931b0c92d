package webframe

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rohanthewiz/serr"
	"github.com/rohanthewiz/webframe/consts"
)

// ErrAssetNotFound is returned by an AssetSource when nothing exists at the path.
var ErrAssetNotFound = errors.New("asset not found")

// Asset is a static file ready to send.
type Asset struct {
	Body        []byte
	ContentType string
}

// AssetSource serves the requests classified as static assets.
type AssetSource interface {
	Open(urlPath string) (Asset, error)
}

// DirAssets serves files beneath a directory on disk.
type DirAssets string

// Open reads the file at urlPath relative to the root directory.
// Paths that would leave the root are treated as not found.
func (d DirAssets) Open(urlPath string) (Asset, error) {
	rel := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if rel == "" || !fs.ValidPath(rel) {
		return Asset{}, ErrAssetNotFound
	}

	fullPath := filepath.Join(string(d), filepath.FromSlash(rel))

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Asset{}, ErrAssetNotFound
		}
		return Asset{}, serr.Wrap(err, "path", fullPath)
	}
	if !info.Mode().IsRegular() {
		return Asset{}, ErrAssetNotFound
	}

	body, err := os.ReadFile(fullPath)
	if err != nil {
		return Asset{}, serr.Wrap(err, "path", fullPath)
	}

	return Asset{
		Body:        body,
		ContentType: consts.MimeByExt(strings.ToLower(path.Ext(rel))),
	}, nil
}
