package level

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/samber/oops"
)

//go:embed levels/*.yaml
var builtin embed.FS

// Source resolves level names to documents
type Source struct {
	fsys fs.FS
	dir  string
}

// Builtin returns the levels compiled into the binary
func Builtin() *Source {
	return &Source{fsys: builtin, dir: "levels"}
}

// Dir returns a source reading *.yaml files from a directory
func Dir(dir string) *Source {
	return FS(os.DirFS(dir))
}

// FS returns a source reading *.yaml files at the root of fsys
func FS(fsys fs.FS) *Source {
	return &Source{fsys: fsys, dir: "."}
}

// Load reads and parses the named level
func (s *Source) Load(name string) (*Level, error) {
	p := path.Join(s.dir, name+".yaml")
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oops.In("level").With("name", name).Wrap(ErrLevelNotFound)
		}
		return nil, oops.In("level").With("path", p).Wrapf(err, "read level")
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, oops.In("level").With("path", p).Wrapf(err, "parse level %s", name)
	}
	if lvl.Name == "" {
		lvl.Name = name
	}
	return lvl, nil
}

// Names lists available level names sorted
func (s *Source) Names() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, oops.In("level").With("dir", s.dir).Wrapf(err, "list levels")
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}
