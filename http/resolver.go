package http

import (
	"strings"

	"github.com/shale-dev/shale/filesystem"
)

// ResolvePath maps a request URL onto a path below root. The URL is
// concatenated as received; no cleaning or normalization is applied.
//
//	/dir/  -> root + "/dir/" + defaultPage
//	/dir   -> root + "/dir" + "/" + defaultPage   (when root/dir is a directory)
//	/page  -> root + "/page"
func ResolvePath(fs filesystem.Filesystem, root string, url string, defaultPage string) string {
	if strings.HasSuffix(url, "/") {
		return root + url + defaultPage
	}

	path := root + url
	if isDir, err := fs.IsDirectory(path); err == nil && isDir {
		return path + "/" + defaultPage
	}

	return path
}

// containsDotDot reports whether url climbs toward the root through a
// ".." path segment.
func containsDotDot(url string) bool {
	for _, segment := range strings.Split(url, "/") {
		if segment == ".." {
			return true
		}
	}

	return false
}
