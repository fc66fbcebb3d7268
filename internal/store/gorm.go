package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is the persisted row backing one collection: the whole
// collection serialized as a single JSON document.
type Document struct {
	Name      string `gorm:"primaryKey;size:64"`
	Body      []byte
	UpdatedAt time.Time
}

func (Document) TableName() string {
	return "documents"
}

// GormSubstrate keeps collection documents in a relational table through
// gorm, so the same store runs on sqlite locally and postgres when shared.
type GormSubstrate struct {
	db *gorm.DB
}

func NewGormSubstrate(db *gorm.DB) (*GormSubstrate, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, err
	}
	return &GormSubstrate{db: db}, nil
}

func (g *GormSubstrate) Get(name string) ([]byte, bool, error) {
	var doc Document
	err := g.db.Where("name = ?", name).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return doc.Body, true, nil
}

func (g *GormSubstrate) Put(name string, body []byte) error {
	doc := Document{Name: name, Body: body, UpdatedAt: time.Now()}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&doc).Error
}

func (g *GormSubstrate) Clear() error {
	return g.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Document{}).Error
}
