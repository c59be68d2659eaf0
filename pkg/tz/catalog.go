package tz

import (
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// Catalog enumerates zone identifiers for the add-zone search.
// Implementations are read-only after construction.
type Catalog interface {
	// Zones returns every identifier, sorted.
	Zones() []string
	// Search returns up to limit identifiers containing q, case-insensitively.
	Search(q string, limit int) []string
}

// Directories tried for the platform zone database, in order.
var zoneinfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
}

// NewCatalog selects the zone enumeration source once, at startup: the
// platform zoneinfo tree when one is readable, otherwise a curated static
// list. Both sources are filtered through the resolver, so the catalog
// never offers an identifier Resolve would reject.
func NewCatalog(r *Resolver, logger *slog.Logger) Catalog {
	for _, dir := range zoneinfoDirs {
		names, err := readZoneinfoTree(dir)
		if err != nil || len(names) == 0 {
			continue
		}
		valid := filterValid(r, names)
		if len(valid) == 0 {
			continue
		}
		logger.Debug("zone catalog from platform database", "dir", dir, "zones", len(valid))
		return &systemCatalog{names: valid}
	}
	valid := filterValid(r, commonZones)
	logger.Debug("zone catalog from static list", "zones", len(valid))
	return &staticCatalog{names: valid}
}

// systemCatalog enumerates the identifiers found in the platform zoneinfo tree.
type systemCatalog struct {
	names []string
}

func (c *systemCatalog) Zones() []string { return append([]string(nil), c.names...) }

func (c *systemCatalog) Search(q string, limit int) []string {
	return searchNames(c.names, q, limit)
}

// staticCatalog serves the curated fallback list for hosts where no
// zoneinfo tree can be read. Zone data itself still resolves through the
// embedded tzdata.
type staticCatalog struct {
	names []string
}

func (c *staticCatalog) Zones() []string { return append([]string(nil), c.names...) }

func (c *staticCatalog) Search(q string, limit int) []string {
	return searchNames(c.names, q, limit)
}

// readZoneinfoTree walks dir collecting zone identifiers. tzdata files are
// named with a leading capital ("Europe/Stockholm"); lowercase entries are
// metadata (posixrules, leapseconds, tzdata.zi) and the right/ and posix/
// subtrees duplicate the main tree.
func readZoneinfoTree(dir string) ([]string, error) {
	var names []string
	err := fs.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == "right" || path == "posix" {
				return fs.SkipDir
			}
			return nil
		}
		base := d.Name()
		if base == "" || base[0] < 'A' || base[0] > 'Z' {
			return nil
		}
		names = append(names, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func filterValid(r *Resolver, names []string) []string {
	valid := make([]string, 0, len(names))
	for _, name := range names {
		if r.Valid(name) {
			valid = append(valid, name)
		}
	}
	sort.Strings(valid)
	return valid
}

func searchNames(names []string, q string, limit int) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	var out []string
	for _, name := range names {
		if q != "" && !strings.Contains(strings.ToLower(name), q) {
			continue
		}
		out = append(out, name)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
