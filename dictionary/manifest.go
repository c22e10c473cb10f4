// Package dictionary loads dictionaries of candidate strings from YAML or
// JSON manifest files and builds fuzzy indexes (Trie, BKTree) from them.
package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fulmenhq/matchkit/foundry/fuzzy"
	"github.com/fulmenhq/matchkit/fulhash"
	"github.com/fulmenhq/matchkit/logging"
)

// Manifest is a loaded and validated dictionary source.
type Manifest struct {
	Name         string
	Source       string
	Words        []string
	Checksum     string // fulhash digest of the raw manifest bytes, formatted "algorithm:hex"
	GenerationID string // fresh UUID assigned at load time
}

type manifestDocument struct {
	Name   string   `json:"name" yaml:"name"`
	Source string   `json:"source" yaml:"source"`
	Words  []string `json:"words" yaml:"words"`
}

// LoadManifest reads, validates, and decodes the manifest at path. YAML is
// used for .yaml/.yml extensions, JSON otherwise. log may be nil, in which
// case load outcomes are not logged.
func LoadManifest(path string, log *logging.Logger) (*Manifest, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		emitLoadFailure(path, "read")
		return nil, fmt.Errorf("dictionary: reading manifest %q: %w", path, err)
	}

	var doc manifestDocument
	if isYAMLPath(path) {
		var payload interface{}
		if err := yaml.Unmarshal(data, &payload); err != nil {
			emitLoadFailure(path, "parse")
			return nil, fmt.Errorf("dictionary: parsing YAML manifest %q: %w", path, err)
		}
		if err := manifestValidator.ValidateData(payload); err != nil {
			logLoadFailure(log, path, err)
			emitLoadFailure(path, "validate")
			return nil, fmt.Errorf("dictionary: manifest %q failed validation: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			emitLoadFailure(path, "decode")
			return nil, fmt.Errorf("dictionary: decoding YAML manifest %q: %w", path, err)
		}
	} else {
		if err := manifestValidator.ValidateJSON(data); err != nil {
			logLoadFailure(log, path, err)
			emitLoadFailure(path, "validate")
			return nil, fmt.Errorf("dictionary: manifest %q failed validation: %w", path, err)
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			emitLoadFailure(path, "decode")
			return nil, fmt.Errorf("dictionary: decoding JSON manifest %q: %w", path, err)
		}
	}

	digest, err := fulhash.Hash(data)
	if err != nil {
		emitLoadFailure(path, "checksum")
		return nil, fmt.Errorf("dictionary: checksumming manifest %q: %w", path, err)
	}

	m := &Manifest{
		Name:         doc.Name,
		Source:       doc.Source,
		Words:        doc.Words,
		Checksum:     digest.String(),
		GenerationID: uuid.New().String(),
	}

	if log != nil {
		log.Info("loaded dictionary manifest",
			zap.String("path", path),
			zap.Int("word_count", len(m.Words)),
			zap.String("checksum", m.Checksum),
			zap.String("generation_id", m.GenerationID),
		)
	}

	emitLoadSuccess(path, len(m.Words), time.Since(start))
	return m, nil
}

func logLoadFailure(log *logging.Logger, path string, err error) {
	if log == nil {
		return
	}
	log.Error("dictionary manifest failed validation", zap.String("path", path), zap.Error(err))
}

func isYAMLPath(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// BuildTrie inserts every word from the manifest into a fresh Trie, in
// manifest order. Duplicate words collapse to a single terminal.
func (m *Manifest) BuildTrie() *fuzzy.Trie {
	return fuzzy.NewTrie(m.Words...)
}

// BuildBKTree inserts every word from the manifest into a fresh BKTree, in
// manifest order. Exact duplicates are silently ignored.
func (m *Manifest) BuildBKTree() *fuzzy.BKTree {
	return fuzzy.NewBKTree(m.Words...)
}
