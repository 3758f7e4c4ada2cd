package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// Catalog domains.
const (
	DomainLexer  = "lexer"
	DomainParser = "parser"
	DomainType   = "type"
)

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "PLW0002"
	Title string `json:"title"` // short human title e.g., "unexpected character"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format: domain -> key -> entry.
type Registry map[string]map[string]CodeEntry

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			return // empty catalog is allowed
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key).
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	ce, ok := reg[domain][key]
	return ce, ok
}

// Code returns the stable ID for (domain, key), or "" if the catalog has none.
func Code(domain, key string) string {
	ce, _ := Lookup(domain, key)
	return ce.ID
}

// ByID finds an entry by its ID across all domains.
func ByID(id string) (CodeEntry, bool) {
	if id == "" || load() != nil {
		return CodeEntry{}, false
	}
	for _, entries := range reg {
		for _, ce := range entries {
			if ce.ID == id {
				return ce, true
			}
		}
	}
	return CodeEntry{}, false
}
