package storage

import (
	"errors"

	"github.com/kettari/news-agency/internal/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var ErrNotConnected = errors.New("manager not connected")

type Manager struct {
	connectionString string
	db               *gorm.DB
}

func NewManager(connectionString string) *Manager {
	return &Manager{connectionString: connectionString}
}

func (m *Manager) Connect() error {
	var err error

	if m.db != nil {
		return nil
	}
	if len(m.connectionString) == 0 {
		return errors.New("database connection string is empty")
	}

	m.db, err = gorm.Open(postgres.Open(m.connectionString), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: "news_", // table for `Headline` would be `news_headlines`
		},
	})
	if err != nil {
		return err
	}

	return nil
}

func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Migrate creates or updates the headline archive table
func (m *Manager) Migrate() error {
	if m.db == nil {
		return ErrNotConnected
	}
	return m.db.AutoMigrate(&entity.Headline{})
}

// RecordHeadline stores one published headline
func (m *Manager) RecordHeadline(headline *entity.Headline) error {
	if m.db == nil {
		return ErrNotConnected
	}
	return m.db.Create(headline).Error
}
