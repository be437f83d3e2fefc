// Package env provides environment variable lookups that can be swapped out in tests.
package env

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"github.com/runoshun/hostutil/internal/domain"
)

// Ensure implementations satisfy domain.EnvReader.
var (
	_ domain.EnvReader = OS{}
	_ domain.EnvReader = Map(nil)
)

// OS reads the process environment.
type OS struct{}

// Lookup returns the value of key from the process environment.
func (OS) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is a fixed set of variables. A nil Map has no variables.
type Map map[string]string

// Lookup returns the value of key from the map.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the variable names in sorted order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Environ returns the variables as KEY=value pairs sorted by key.
func (m Map) Environ() []string {
	pairs := make([]string, 0, len(m))
	for _, k := range m.Keys() {
		pairs = append(pairs, k+"="+m[k])
	}
	return pairs
}

// Layered consults each reader in order and returns the first hit.
type Layered = domain.LayeredEnv

// Get returns the value of key from r. When key is unset the first default is
// returned, or "" when none is given. A variable set to "" counts as set.
// A nil r has no variables.
func Get(r domain.EnvReader, key string, def ...string) string {
	if r != nil {
		if v, ok := r.Lookup(key); ok {
			return v
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return ""
}

// LoadFiles parses dotenv files into a Map. Later files override earlier ones.
// Variable references inside the files are expanded as godotenv does.
func LoadFiles(paths ...string) (Map, error) {
	m := Map{}
	for _, p := range paths {
		vars, err := godotenv.Read(p)
		if err != nil {
			return nil, fmt.Errorf("load env file %s: %w", p, err)
		}
		maps.Copy(m, vars)
	}
	return m, nil
}

// Ensure FileLoader implements domain.EnvFileLoader.
var _ domain.EnvFileLoader = FileLoader{}

// FileLoader implements domain.EnvFileLoader with LoadFiles.
type FileLoader struct{}

// Load parses the dotenv files at paths.
func (FileLoader) Load(paths ...string) (domain.EnvReader, error) {
	m, err := LoadFiles(paths...)
	if err != nil {
		return nil, err
	}
	return m, nil
}
