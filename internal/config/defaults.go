package config

const (
	defaultDataDir     = "~/.local/share/cinelog/imdb"
	defaultCatalogPath = "~/.local/share/cinelog/catalog.csv"
	defaultPeoplePath  = "~/.local/share/cinelog/people.csv"
	defaultIndexPath   = "~/.local/share/cinelog/index.db"
	defaultJournalPath = "~/movie_journal.csv"
	defaultLinkedPath  = "~/.local/share/cinelog/journal_linked.csv"
	defaultLogDir      = "~/.local/share/cinelog/logs"

	defaultBasicsFile  = "title.basics.tsv.gz"
	defaultCrewFile    = "title.crew.tsv.gz"
	defaultRatingsFile = "title.ratings.tsv.gz"
	defaultNamesFile   = "name.basics.tsv.gz"

	defaultJournalFormat = "csv"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:     defaultDataDir,
			CatalogPath: defaultCatalogPath,
			PeoplePath:  defaultPeoplePath,
			IndexPath:   defaultIndexPath,
			JournalPath: defaultJournalPath,
			LinkedPath:  defaultLinkedPath,
			LogDir:      defaultLogDir,
		},
		Catalog: Catalog{
			BasicsFile:     defaultBasicsFile,
			CrewFile:       defaultCrewFile,
			RatingsFile:    defaultRatingsFile,
			NamesFile:      defaultNamesFile,
			IncludeRatings: true,
			IncludePeople:  true,
			IncludeAdult:   false,
			TitleTypes:     []string{"movie"},
		},
		Journal: Journal{
			Format: defaultJournalFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
