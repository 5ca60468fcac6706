package venues

// File is the top-level structure of venues.yaml.
type File struct {
	Venues []Entry `yaml:"venues"`
}

// Entry is one venue as declared in venues.yaml. LimitDays is how many
// future days upstream will serve for the venue; zero means "use default".
type Entry struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	LimitDays int    `yaml:"limit_days"`
}
