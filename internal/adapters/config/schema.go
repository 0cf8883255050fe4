package config

// Configfile represents the structure of the cairn.yaml configuration file.
type Configfile struct {
	CacheDir         string `yaml:"cache_dir"`
	Registry         string `yaml:"registry"`
	Jobs             *int   `yaml:"jobs"`
	Offline          bool   `yaml:"offline"`
	VersionConflicts string `yaml:"version_conflicts"`
	MetricsFile      string `yaml:"metrics_file"`
}
