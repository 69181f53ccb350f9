// Package appdata resolves the per-user local application-data directory,
// the place where the bootstrapper keeps its log.
package appdata

// Resolver returns the per-user local application-data directory.
type Resolver interface {
	LocalAppData() (string, error)
}

type static string

func (s static) LocalAppData() (string, error) {
	return string(s), nil
}

// Static returns a Resolver that always reports dir.
func Static(dir string) Resolver {
	return static(dir)
}

// OS resolves the directory through the platform's own facility.
type OS struct{}

// LocalAppData implements Resolver.
func (OS) LocalAppData() (string, error) {
	return localAppData()
}
