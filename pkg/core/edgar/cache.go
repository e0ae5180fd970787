package edgar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DocumentCache is a file-based cache for fetched filing documents, keyed
// by CIK and accession. Filings never change once published, so entries
// have no expiry.
type DocumentCache struct {
	cacheDir string
}

// NewDocumentCache creates a cache under .cache/edgar/documents in the
// current working directory.
func NewDocumentCache() *DocumentCache {
	cacheDir := filepath.Join(".cache", "edgar", "documents")
	os.MkdirAll(cacheDir, 0755)
	return &DocumentCache{cacheDir: cacheDir}
}

// NewDocumentCacheWithDir creates a cache in a custom directory.
func NewDocumentCacheWithDir(dir string) *DocumentCache {
	os.MkdirAll(dir, 0755)
	return &DocumentCache{cacheDir: dir}
}

func (c *DocumentCache) cacheKey(cik, accession string) string {
	// Normalize accession number (remove dashes)
	accession = strings.ReplaceAll(accession, "-", "")
	return fmt.Sprintf("%s_%s", cik, accession)
}

func (c *DocumentCache) filePath(key string) string {
	return filepath.Join(c.cacheDir, key+".html")
}

// Get retrieves a cached document. Returns "" when not cached.
func (c *DocumentCache) Get(cik, accession string) string {
	data, err := os.ReadFile(c.filePath(c.cacheKey(cik, accession)))
	if err != nil {
		return ""
	}
	return string(data)
}

// Set stores a document in the cache.
func (c *DocumentCache) Set(cik, accession, content string) error {
	return os.WriteFile(c.filePath(c.cacheKey(cik, accession)), []byte(content), 0644)
}

// Has checks whether a document is cached.
func (c *DocumentCache) Has(cik, accession string) bool {
	_, err := os.Stat(c.filePath(c.cacheKey(cik, accession)))
	return err == nil
}

// ClearCache removes all cached documents.
func (c *DocumentCache) ClearCache() error {
	return os.RemoveAll(c.cacheDir)
}
