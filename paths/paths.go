// This file is part of Gopher3000.
//
// Gopher3000 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher3000 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher3000.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jetsetilly/gopher3000/curated"
)

// the base path for all resources. use getBasePath() rather than this value
// directly.
const baseResourcePath = ".gopher3000"

// overridden by tests so that the user's configuration is not touched.
var basePath = getBasePath

// ResourcePath returns the path of the resource inside the resource
// directory. The directory (but not the resource) is created if necessary.
//
// The last element of resource is considered to be a filename. Use an empty
// string as the last element if the requested resource is a directory.
func ResourcePath(resource ...string) (string, error) {
	p := make([]string, 0, len(resource)+1)
	p = append(p, basePath())
	p = append(p, resource...)
	fn := filepath.Join(p...)

	dir := fn
	if len(resource) > 0 && resource[len(resource)-1] != "" {
		dir = filepath.Dir(fn)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	return fn, nil
}

// getBasePath returns baseResourcePath if it exists in the current
// directory. Otherwise it is placed in the user's configuration directory.
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cfg, baseResourcePath[1:])
}

// UniqueFilename returns a filename that will not collide with an existing
// one. The filename is made of the prefix, a timestamp and the extension.
func UniqueFilename(prefix string, extension string) string {
	n := time.Now()
	fn := fmt.Sprintf("%s_%04d%02d%02d_%02d%02d%02d", prefix,
		n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	u := fmt.Sprintf("%s.%s", fn, extension)
	for i := 1; ; i++ {
		if _, err := os.Stat(u); err != nil {
			return u
		}
		u = fmt.Sprintf("%s_%d.%s", fn, i, extension)
	}
}
