package catalog

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"cinelog/internal/config"
)

func writeDump(t *testing.T, dir, name, content string) {
	t.Helper()
	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(file)
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(dir, "imdb")
	cfg.Paths.CatalogPath = filepath.Join(dir, "catalog.csv")
	cfg.Paths.PeoplePath = filepath.Join(dir, "people.csv")
	if err := os.MkdirAll(cfg.Paths.DataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return &cfg
}

const basicsDump = "tconst\ttitleType\tprimaryTitle\toriginalTitle\tisAdult\tstartYear\tendYear\truntimeMinutes\tgenres\n" +
	"tt001\tmovie\tHeat\tHeat\t0\t1995\t\\N\t170\tCrime\n" +
	"tt002\tmovie\tHeat\tHeat\t0\t1986\t\\N\t101\tDrama\n" +
	"tt003\ttvSeries\tHeat\tHeat\t0\t1999\t\\N\t42\tDrama\n" +
	"tt004\tmovie\tMystery Film\tMystery Film\t0\t\\N\t\\N\t90\tDrama\n" +
	"tt005\tmovie\tNaughty\tNaughty\t1\t2001\t\\N\t80\tAdult\n" +
	"tt001\tmovie\tHeat\tHeat\t0\t1995\t\\N\t170\tCrime\n" +
	"tt006\tmovie\tBroken Year\tBroken Year\t0\tnineteen\t\\N\t90\tDrama\n"

const crewDump = "tconst\tdirectors\twriters\n" +
	"tt001\tnm001\tnm900\n" +
	"tt002\tnm002,nm003\tnm901\n" +
	"tt004\t\\N\t\\N\n" +
	"tt999\tnm999\t\\N\n"

const ratingsDump = "tconst\taverageRating\tnumVotes\n" +
	"tt001\t8.3\t750000\n" +
	"tt999\t9.9\t5\n"

const namesDump = "nconst\tprimaryName\tbirthYear\tdeathYear\tprimaryProfession\tknownForTitles\n" +
	"nm001\tMichael Mann\t1943\t\\N\tdirector\ttt001\n" +
	"nm002\tR. M. Richards\t1929\t\\N\tdirector\ttt002\n" +
	"nm003\tJerry Jameson\t1934\t\\N\tdirector\ttt002\n" +
	"nm999\tUnused Person\t1900\t\\N\tactor\ttt999\n"

func writeAllDumps(t *testing.T, cfg *config.Config) {
	t.Helper()
	writeDump(t, cfg.Paths.DataDir, cfg.Catalog.BasicsFile, basicsDump)
	writeDump(t, cfg.Paths.DataDir, cfg.Catalog.CrewFile, crewDump)
	writeDump(t, cfg.Paths.DataDir, cfg.Catalog.RatingsFile, ratingsDump)
	writeDump(t, cfg.Paths.DataDir, cfg.Catalog.NamesFile, namesDump)
}

func TestLoaderRun(t *testing.T) {
	cfg := testConfig(t)
	writeAllDumps(t, cfg)

	summary, err := NewLoader(cfg, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// tt003 (tvSeries) and tt005 (adult) filtered, tt001 duplicate dropped,
	// tt006 skipped for its year; tt001, tt002, tt004 survive.
	if summary.Records != 3 {
		t.Errorf("Records = %d, want 3", summary.Records)
	}
	if summary.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", summary.Skipped)
	}
	if summary.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", summary.Duplicates)
	}

	records, err := ReadCatalog(cfg.Paths.CatalogPath)
	if err != nil {
		t.Fatalf("ReadCatalog() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("catalog rows = %d, want 3", len(records))
	}

	first := records[0]
	if first.ID != "tt001" || first.Title != "Heat" || first.Year != 1995 {
		t.Errorf("first record = %+v", first)
	}
	if !reflect.DeepEqual(first.Directors, []string{"nm001"}) {
		t.Errorf("first.Directors = %v, want [nm001]", first.Directors)
	}
	if first.Rating != "8.3" || first.Votes != "750000" {
		t.Errorf("ratings join missing: %+v", first)
	}

	second := records[1]
	if !reflect.DeepEqual(second.Directors, []string{"nm002", "nm003"}) {
		t.Errorf("second.Directors = %v, want [nm002 nm003]", second.Directors)
	}

	third := records[2]
	if third.ID != "tt004" || third.HasYear() {
		t.Errorf("year-less record mishandled: %+v", third)
	}
	if len(third.Directors) != 0 {
		t.Errorf("third.Directors = %v, want empty", third.Directors)
	}

	names, err := ReadPeople(cfg.Paths.PeoplePath)
	if err != nil {
		t.Fatalf("ReadPeople() error = %v", err)
	}
	if names["nm001"] != "Michael Mann" {
		t.Errorf("people table missing nm001: %v", names)
	}
	if _, ok := names["nm999"]; ok {
		t.Error("people table contains unreferenced person nm999")
	}
	if summary.People != 3 {
		t.Errorf("People = %d, want 3", summary.People)
	}
}

func TestLoaderMissingColumnIsFatal(t *testing.T) {
	cfg := testConfig(t)
	writeAllDumps(t, cfg)

	// Rewrite basics without startYear.
	noYear := "tconst\ttitleType\tprimaryTitle\tisAdult\n" +
		"tt001\tmovie\tHeat\t0\n"
	writeDump(t, cfg.Paths.DataDir, cfg.Catalog.BasicsFile, noYear)

	// An older catalog must survive the failed run untouched.
	if err := os.WriteFile(cfg.Paths.CatalogPath, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader(cfg, nil).Run(context.Background())
	if err == nil {
		t.Fatal("Run() succeeded with missing startYear column")
	}
	if !errors.Is(err, ErrDataFormat) {
		t.Errorf("Run() error = %v, want ErrDataFormat", err)
	}
	var formatErr *DataFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("Run() error = %T, want *DataFormatError", err)
	}
	if formatErr.Column != "startYear" {
		t.Errorf("DataFormatError.Column = %q, want startYear", formatErr.Column)
	}

	data, err := os.ReadFile(cfg.Paths.CatalogPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "stale" {
		t.Error("failed load overwrote the existing catalog")
	}
}

func TestLoaderRatingsOptional(t *testing.T) {
	cfg := testConfig(t)
	writeAllDumps(t, cfg)
	cfg.Catalog.IncludeRatings = false
	cfg.Catalog.IncludePeople = false

	if _, err := NewLoader(cfg, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	records, err := ReadCatalog(cfg.Paths.CatalogPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, record := range records {
		if record.Rating != "" || record.Votes != "" {
			t.Errorf("record %s carries ratings with join disabled", record.ID)
		}
	}
	if _, err := os.Stat(cfg.Paths.PeoplePath); !os.IsNotExist(err) {
		t.Error("people table written with include_people disabled")
	}
}

func TestReadCatalogRejectsWrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte("id,name,year,directors,rating,votes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadCatalog(path)
	if !errors.Is(err, ErrDataFormat) {
		t.Errorf("ReadCatalog() error = %v, want ErrDataFormat", err)
	}
}
