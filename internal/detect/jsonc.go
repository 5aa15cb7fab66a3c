package detect

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// jsonDescriptor is the wire shape of one catalog entry.
type jsonDescriptor struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	SavePaths    []string   `json:"save_paths"`
	FilePatterns []string   `json:"file_patterns"`
	RegistryKeys [][]string `json:"registry_keys"`
	Icon         string     `json:"icon"`
}

// stripComments removes lines whose trimmed content begins with //,
// turning a JSONC document into plain JSON.
func stripComments(data []byte) []byte {
	var out bytes.Buffer
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// parseJSONCCatalog parses a JSONC descriptor catalog. The document must be
// a JSON array; entries that fail to parse or validate are skipped
// individually and counted in skipped.
func parseJSONCCatalog(data []byte) (descriptors []Descriptor, skipped int, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(stripComments(data), &raw); err != nil {
		return nil, 0, errors.Wrap(err, "parsing descriptor catalog")
	}

	for _, entry := range raw {
		var jd jsonDescriptor
		if err := json.Unmarshal(entry, &jd); err != nil {
			skipped++
			continue
		}
		d, err := jd.toDescriptor()
		if err != nil {
			skipped++
			continue
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, skipped, nil
}

func (jd jsonDescriptor) toDescriptor() (Descriptor, error) {
	d := Descriptor{
		GameID:       jd.ID,
		DisplayName:  jd.Name,
		SavePaths:    jd.SavePaths,
		FilePatterns: jd.FilePatterns,
		Icon:         jd.Icon,
	}
	for _, pair := range jd.RegistryKeys {
		if len(pair) != 2 {
			return Descriptor{}, errors.Wrapf(ErrBadDescriptor, "%s: registry key must be [keyPath, valueName]", jd.ID)
		}
		d.RegistryKeys = append(d.RegistryKeys, RegistryKey{KeyPath: pair[0], ValueName: pair[1]})
	}
	return d, d.validate()
}
