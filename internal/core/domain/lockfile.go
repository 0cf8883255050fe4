package domain

// LockfileVersion is the current lockfile format version.
const LockfileVersion = 1

// Lockfile is the persisted result of a successful resolution.
// Packages are stored in build order.
type Lockfile struct {
	Version  int             `yaml:"version"`
	Packages []LockedPackage `yaml:"packages"`
}

// LockedPackage is a single resolved package in the lockfile.
type LockedPackage struct {
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	Source       string   `yaml:"source,omitempty"`
	Commit       string   `yaml:"commit,omitempty"`
	Dependencies []string `yaml:"dependencies,omitempty"`
}

// NewLockfile captures the graph in build order. The root package is
// recorded without a source.
func NewLockfile(g *Graph, order []*Package) *Lockfile {
	lf := &Lockfile{Version: LockfileVersion}
	root := g.Root()
	for _, p := range order {
		locked := LockedPackage{
			Name:         p.Name(),
			Version:      p.ID.Version,
			Commit:       p.Manifest.Commit,
			Dependencies: g.Dependencies(p.Name()),
		}
		if p != root {
			locked.Source = p.ID.Source.String()
		}
		lf.Packages = append(lf.Packages, locked)
	}
	return lf
}

// Pins returns the locked commit of every git package keyed by its source.
// Entries whose source cannot be parsed are skipped.
func (l *Lockfile) Pins() map[SourceSpec]string {
	pins := make(map[SourceSpec]string)
	if l == nil {
		return pins
	}
	for _, p := range l.Packages {
		if p.Commit == "" || p.Source == "" {
			continue
		}
		src, err := ParseSourceSpec(p.Source)
		if err != nil || !src.IsGit() {
			continue
		}
		pins[src] = p.Commit
	}
	return pins
}
