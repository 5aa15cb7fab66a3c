package detect

import (
	_ "embed"
)

// defaultCatalog is the data-defined descriptor catalog shipped with the
// binary. It is used when no user catalog file exists.
//
//go:embed games.jsonc
var defaultCatalog []byte

// Builtin returns the compiled descriptor catalog. Registration is explicit
// and enumerable: every code-defined descriptor lives in this one list, so a
// malformed entry is skipped individually instead of failing a module scan.
func Builtin() []Descriptor {
	return []Descriptor{
		{
			GameID:      "ac3_remastered",
			DisplayName: "Assassin's Creed III Remastered CODEX DODI",
			SavePaths: []string{
				`%PUBLIC%\Documents\uPlay\CODEX\Saves\AssassinsCreedIIIRemastered`,
			},
			Icon: "⚔️",
		},
	}
}
