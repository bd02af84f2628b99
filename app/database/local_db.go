package database

import (
	"BoucheriePos/app/models"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// LocalDB manages the local SQLite database backing the sales ledger.
// There is one row per sale, holding the full serialized record, so the
// persisted shape round-trips exactly through JSON.
type LocalDB struct {
	db     *gorm.DB
	dbPath string
}

// SaleRecord is a persisted sale. SaleData is the JSON serialization of
// models.Sale; Timestamp duplicates the sale's epoch milliseconds so rows
// can be ordered without parsing the payload.
type SaleRecord struct {
	ID        uint   `gorm:"primaryKey"`
	SaleID    string `gorm:"unique;not null"`
	SaleData  string `gorm:"type:text"`
	Timestamp int64  `gorm:"index"`
	CreatedAt time.Time
}

var localDB *LocalDB

// InitializeLocalDB opens (creating if necessary) the SQLite database at
// dbPath and runs migrations.
func InitializeLocalDB(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	// CGO-free driver
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return fmt.Errorf("failed to connect to local database: %w", err)
	}

	localDB = &LocalDB{
		db:     db,
		dbPath: dbPath,
	}

	if err := localDB.runMigrations(); err != nil {
		return fmt.Errorf("failed to run local migrations: %w", err)
	}

	return nil
}

// GetLocalDB returns the local database instance.
func GetLocalDB() *LocalDB {
	if localDB == nil {
		InitializeLocalDB("./data/boucherie.db")
	}
	return localDB
}

func (l *LocalDB) runMigrations() error {
	return l.db.AutoMigrate(&SaleRecord{})
}

// Load reads all persisted sales, newest first. A fresh database yields an
// empty ledger; rows that fail to parse are skipped with a warning rather
// than bringing the terminal down, since the rest of the history is still
// usable.
func (l *LocalDB) Load() ([]models.Sale, error) {
	var records []SaleRecord
	if err := l.db.Order("timestamp DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to read sale records: %w", err)
	}

	sales := make([]models.Sale, 0, len(records))
	for _, rec := range records {
		var sale models.Sale
		if err := json.Unmarshal([]byte(rec.SaleData), &sale); err != nil {
			log.Printf("Warning: skipping unreadable sale record %s: %v", rec.SaleID, err)
			continue
		}
		sales = append(sales, sale)
	}
	return sales, nil
}

// Save rewrites the persisted collection from the given ledger in a single
// transaction. Sales are immutable so existing rows never change content;
// the full rewrite mirrors the single-key storage layout and makes a
// concurrent writer a clean last-write-wins, which is a documented
// limitation of the single-terminal model.
func (l *LocalDB) Save(sales []models.Sale) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&SaleRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear sale records: %w", err)
		}
		for _, sale := range sales {
			payload, err := json.Marshal(sale)
			if err != nil {
				return fmt.Errorf("failed to serialize sale %s: %w", sale.ID, err)
			}
			rec := SaleRecord{
				SaleID:    sale.ID,
				SaleData:  string(payload),
				Timestamp: sale.Timestamp,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("failed to write sale %s: %w", sale.ID, err)
			}
		}
		return nil
	})
}

// Close closes the underlying connection. Called on shutdown.
func (l *LocalDB) Close() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
