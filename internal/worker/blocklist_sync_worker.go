package worker

import (
	"bufio"
	"os"
	"strings"

	"github.com/trknhr/kanarank/internal/filter"
	"github.com/trknhr/kanarank/internal/logger"
	"github.com/trknhr/kanarank/internal/store"
)

// BlocklistSyncWorker imports a plain text blocklist (one value per line, '#' starts a comment)
// into the store and the live suggestion filter.
type BlocklistSyncWorker struct {
	path   string
	store  *store.BlocklistStore
	filter *filter.SuggestionFilter
	meta   *store.MetaStore
}

func NewBlocklistSyncWorker(path string, blocklist *store.BlocklistStore, f *filter.SuggestionFilter, meta *store.MetaStore) *BlocklistSyncWorker {
	return &BlocklistSyncWorker{path: path, store: blocklist, filter: f, meta: meta}
}

func (b *BlocklistSyncWorker) Key() string  { return "blocklist" }
func (b *BlocklistSyncWorker) Path() string { return b.path }
func (b *BlocklistSyncWorker) NeedsReload() bool {
	if b.path == "" {
		return false
	}
	if _, err := os.Stat(b.path); err != nil {
		return false
	}
	return b.meta.NeedsReload(b.Key(), b.path)
}

func (b *BlocklistSyncWorker) Sync() error {
	if b.path == "" {
		return nil
	}
	values, err := readBlocklist(b.path)
	if err != nil {
		logger.Debug("failed to read blocklist: %v", err)
		return err
	}
	if err := b.store.Add(values); err != nil {
		return err
	}
	b.filter.Add(values...)
	if err := b.meta.TouchMeta(b.Key(), b.path); err != nil {
		logger.Warn("failed to record blocklist mtime: %v", err)
	}
	logger.Debug("synced %d blocklist values", len(values))
	return nil
}

func readBlocklist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			values = append(values, line)
		}
	}
	return values, scanner.Err()
}
