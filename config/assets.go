package config

import (
	"io/fs"
	"path"
	"strings"

	"github.com/pkg/errors"
)

// ValidateAssetPaths checks that the header icon, title icon and favicon
// exist in fsys, which is rooted at the static asset directory. All missing
// files are reported together in a *MissingAssetError.
func ValidateAssetPaths(fsys fs.FS, cfg *SiteConfiguration) error {
	if cfg == nil {
		return fieldError("config", "", "is nil")
	}

	var missing []string
	seen := make(map[string]bool)
	for _, asset := range []string{cfg.HeaderIcon, cfg.TitleIcon, cfg.Favicon} {
		if seen[asset] {
			continue
		}
		seen[asset] = true

		ok, err := fileExists(fsys, asset)
		if err != nil {
			return err
		}
		if !ok {
			missing = append(missing, asset)
		}
	}

	if len(missing) > 0 {
		return &MissingAssetError{Missing: missing}
	}
	return nil
}

// assetPath turns a configured relative path into an fs.FS path.
func assetPath(p string) string {
	p = strings.TrimPrefix(path.Clean(strings.ReplaceAll(p, "\\", "/")), "/")
	return strings.TrimPrefix(p, "./")
}

func fileExists(fsys fs.FS, name string) (bool, error) {
	p := assetPath(name)
	if !fs.ValidPath(p) {
		return false, nil
	}

	info, err := fs.Stat(fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, "checking %s", name)
	}
	return !info.IsDir(), nil
}
