package layers

// Config holds the settings of the layers feature.
type Config struct {
	// Document is the scene document loaded when none is named.
	Document string `mapstructure:"document" default:"default"`
	// Persist keeps view layer state in the database.
	Persist bool `mapstructure:"persist" default:"true"`
	// Migrate creates or updates the state tables on startup.
	Migrate bool `mapstructure:"migrate" default:"true"`
}
