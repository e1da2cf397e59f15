package main

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/skill"
	"github.com/KirkDiggler/zodiac-skill-engine/internal/zodiac"
)

//go:embed skills.yaml
var defaultCatalog []byte

type catalogFile struct {
	Skills []*skill.Definition `yaml:"skills"`
}

// parseCatalog reads the signature skills, keyed by sign
func parseCatalog(data []byte) (map[zodiac.Sign]*skill.Definition, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.WrapWithCode(err, zerr.CodeValidation, "failed to parse skill catalog")
	}

	catalog := make(map[zodiac.Sign]*skill.Definition, len(file.Skills))
	for _, def := range file.Skills {
		if def.ID == "" || len(def.Effects) == 0 {
			return nil, zerr.Validationf("skill %q needs an id and effects", def.Name)
		}
		if _, dup := catalog[def.Zodiac]; dup {
			return nil, zerr.Validationf("sign %s has two signature skills", def.Zodiac)
		}
		catalog[def.Zodiac] = def
	}
	return catalog, nil
}
