package detect

import (
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// tomlCatalog is the document shape of a supplemental TOML catalog.
//
//	[[games]]
//	id = "skyrim"
//	name = "The Elder Scrolls V: Skyrim"
//	save_paths = ["~/Documents/My Games/Skyrim/Saves"]
type tomlCatalog struct {
	Games []tomlDescriptor `toml:"games"`
}

type tomlDescriptor struct {
	ID           string     `toml:"id"`
	Name         string     `toml:"name"`
	SavePaths    []string   `toml:"save_paths"`
	FilePatterns []string   `toml:"file_patterns"`
	RegistryKeys [][]string `toml:"registry_keys"`
	Icon         string     `toml:"icon"`
}

// parseTOMLCatalog parses a supplemental TOML descriptor catalog. Entries
// that fail validation are skipped individually.
func parseTOMLCatalog(data []byte) (descriptors []Descriptor, skipped int, err error) {
	var doc tomlCatalog
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, 0, errors.Wrap(err, "parsing toml catalog")
	}

	for _, td := range doc.Games {
		d := Descriptor{
			GameID:       td.ID,
			DisplayName:  td.Name,
			SavePaths:    td.SavePaths,
			FilePatterns: td.FilePatterns,
			Icon:         td.Icon,
		}
		bad := false
		for _, pair := range td.RegistryKeys {
			if len(pair) != 2 {
				bad = true
				break
			}
			d.RegistryKeys = append(d.RegistryKeys, RegistryKey{KeyPath: pair[0], ValueName: pair[1]})
		}
		if bad || d.validate() != nil {
			skipped++
			continue
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, skipped, nil
}
