package database

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/vikash1kr1209/bireenamedico/config"

	bolt "go.etcd.io/bbolt"
)

// BoltDB is the global storage handle.
var BoltDB *bolt.DB

// InitDB opens the local storage file.
func InitDB() {
	path := config.AppConfig.DataPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		log.Fatalf("failed to open storage file %s: %v", path, err)
	}
	BoltDB = db
	log.Println("Opened local storage successfully!")
}

// CloseDB releases the storage file handle.
func CloseDB() {
	if BoltDB != nil {
		if err := BoltDB.Close(); err != nil {
			log.Printf("failed to close storage file: %v", err)
		}
	}
}
