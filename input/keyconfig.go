package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Rune aliases for keys that read poorly as bare YAML keys
var runeAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
}

// keyConfigFile is the YAML layout of a keymap override
type keyConfigFile struct {
	Runes map[string]string `yaml:"runes"`
	Keys  map[string]string `yaml:"keys"`
}

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Only sections and keys present in the document are populated
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keyConfigFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "keymap parse")
	}

	kt := &KeyTable{}

	if len(raw.Runes) > 0 {
		kt.Runes = make(map[rune]Action, len(raw.Runes))
		for key, name := range raw.Runes {
			r, err := parseRuneKey(key)
			if err != nil {
				return nil, errors.Wrap(err, "section runes")
			}
			a, ok := ActionByName(name)
			if !ok {
				return nil, errors.Errorf("section runes: key %q: unknown action %q", key, name)
			}
			kt.Runes[r] = a
		}
	}

	if len(raw.Keys) > 0 {
		kt.Keys = make(map[tcell.Key]Action, len(raw.Keys))
		for key, name := range raw.Keys {
			k, ok := keyByName(key)
			if !ok {
				return nil, errors.Errorf("section keys: unknown key name %q", key)
			}
			a, ok := ActionByName(name)
			if !ok {
				return nil, errors.Errorf("section keys: key %q: unknown action %q", key, name)
			}
			kt.Keys[k] = a
		}
	}

	return kt, nil
}

func parseRuneKey(key string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(key)]; ok {
		return r, nil
	}
	runes := []rune(key)
	if len(runes) != 1 {
		return 0, errors.Errorf("key %q: expected a single character or alias", key)
	}
	return runes[0], nil
}

// keyByName reverse-resolves tcell key names, case-insensitive
func keyByName(name string) (tcell.Key, bool) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}
