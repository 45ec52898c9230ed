package kb

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaultContent embed.FS

// Default returns the knowledge base built from the embedded content files.
// It panics on a malformed embedded file, which can only happen at build time.
func Default() *KnowledgeBase {
	b := &KnowledgeBase{}
	entries, err := defaultContent.ReadDir("data")
	if err != nil {
		panic(fmt.Sprintf("kb: reading embedded content: %v", err))
	}
	for _, entry := range entries {
		data, err := defaultContent.ReadFile("data/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("kb: reading embedded %s: %v", entry.Name(), err))
		}
		if err := b.merge(data); err != nil {
			panic(fmt.Sprintf("kb: parsing embedded %s: %v", entry.Name(), err))
		}
	}
	return b
}

// LoadDir builds a knowledge base from YAML files under dir. Files are matched
// against the given doublestar patterns (relative to dir); with no patterns
// every .yaml/.yml file is taken. Files merge in lexical walk order: FAQ
// categories and schedule entries append, suggestion keys overwrite.
func LoadDir(dir string, patterns []string) (*KnowledgeBase, error) {
	if len(patterns) == 0 {
		patterns = []string{"**/*.yaml", "**/*.yml"}
	}

	b := &KnowledgeBase{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		matched := false
		for _, pattern := range patterns {
			if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
				matched = true
				break
			}
		}
		if !matched {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := b.merge(data); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading content from %s: %w", dir, err)
	}

	if len(b.FAQ) == 0 && len(b.Schedule) == 0 {
		return nil, fmt.Errorf("no content found in %s", dir)
	}
	return b, nil
}

// Load returns the knowledge base for the given content directory, falling
// back to the embedded defaults when dir is empty or does not exist.
func Load(dir string, patterns []string) (*KnowledgeBase, error) {
	if strings.TrimSpace(dir) == "" {
		return Default(), nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadDir(dir, patterns)
}

func (b *KnowledgeBase) merge(data []byte) error {
	var doc KnowledgeBase
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	b.FAQ = append(b.FAQ, doc.FAQ...)
	b.Schedule = append(b.Schedule, doc.Schedule...)
	if len(doc.Suggestions) > 0 {
		if b.Suggestions == nil {
			b.Suggestions = make(map[string][]string, len(doc.Suggestions))
		}
		for hint, items := range doc.Suggestions {
			b.Suggestions[hint] = items
		}
	}
	return nil
}

// FindFAQ returns the entry whose question equals q verbatim, plus its
// category title. Used by the exact-match fast path and by tests.
func (b *KnowledgeBase) FindFAQ(q string) (*FAQItem, string) {
	for ci := range b.FAQ {
		cat := &b.FAQ[ci]
		for qi := range cat.Questions {
			if cat.Questions[qi].Question == q {
				return &cat.Questions[qi], cat.Title
			}
		}
	}
	return nil, ""
}

// NumFAQEntries counts all entries across categories.
func (b *KnowledgeBase) NumFAQEntries() int {
	n := 0
	for _, cat := range b.FAQ {
		n += len(cat.Questions)
	}
	return n
}

// NumScheduleEntries counts the programme entries.
func (b *KnowledgeBase) NumScheduleEntries() int {
	return len(b.Schedule)
}
