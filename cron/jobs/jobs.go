// Package jobs holds the scheduled maintenance jobs. Dependencies are
// injected once at startup via Init; jobs run as no-ops before that so a
// bare `cron:start` never crashes.
package jobs

import (
	"log"
	"time"

	"gorm.io/gorm"

	"bazar.GO/catalog"
	kvRepo "bazar.GO/model/repository/kv"
)

var (
	store       *catalog.Store
	db          *gorm.DB
	catalogPath string
	// onReload is called after a successful catalog swap (cache drop).
	onReload func()
)

// Init wires the jobs to the process-wide catalog store and storage DB.
func Init(s *catalog.Store, d *gorm.DB, path string, reloadHook func()) {
	store, db, catalogPath, onReload = s, d, path, reloadHook
}

// CartPruneAge is how long an untouched cart or language selection
// survives before the prune job drops it.
const CartPruneAge = 30 * 24 * time.Hour

// CatalogReloadJob re-reads the catalog document and invalidates the
// derived index and cached payloads.
func CatalogReloadJob(args ...string) {
	if store == nil {
		log.Println("catalogreload: not initialized, skipping")
		return
	}
	path := catalogPath
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}
	if err := store.LoadFile(path); err != nil {
		log.Printf("catalogreload: %v", err)
		return
	}
	if onReload != nil {
		onReload()
	}
	log.Printf("catalogreload: reloaded %s", path)
}

// CartPruneJob drops abandoned carts and stale language selections.
func CartPruneJob(args ...string) {
	if db == nil {
		log.Println("cartprune: not initialized, skipping")
		return
	}
	repo := kvRepo.NewKVRepository(db)
	for _, prefix := range []string{"cart:", "lang:"} {
		n, err := repo.DeleteOlderThan(prefix, CartPruneAge)
		if err != nil {
			log.Printf("cartprune: %s %v", prefix, err)
			continue
		}
		if n > 0 {
			log.Printf("cartprune: removed %d %s entries", n, prefix)
		}
	}
}
