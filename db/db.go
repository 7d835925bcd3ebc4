package db

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/techagentng/bookxchange/config"
	"github.com/techagentng/bookxchange/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	DB *gorm.DB
}

// GetDB opens the configured database and runs migrations.
func GetDB(c *config.Config) (*GormDB, error) {
	gormConfig := &gorm.Config{}
	if c.Debug && !c.IsProd() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	var dialector gorm.Dialector
	switch c.DatabaseDriver {
	case config.DriverPostgres:
		logrus.WithField("driver", c.DatabaseDriver).Info("connecting to postgres")
		dialector = postgres.New(postgres.Config{DSN: c.DSN()})
	default:
		logrus.WithField("driver", c.DatabaseDriver).Info("connecting to sqlite")
		dialector = sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: SQLiteDSN(c.DSN())})
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	return New(gormDB)
}

// New wraps an opened connection and migrates the schema.
func New(gormDB *gorm.DB) (*GormDB, error) {
	if gormDB.Dialector.Name() == "sqlite" {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, errors.Wrap(err, "sqlite handle")
		}
		// sqlite serializes writers anyway; one connection keeps
		// in-memory databases alive and avoids table lock errors.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := migrate(gormDB); err != nil {
		return nil, errors.Wrap(err, "unable to run migrations")
	}
	return &GormDB{DB: gormDB}, nil
}

// SQLiteDSN turns foreign key enforcement on unless the DSN already says otherwise.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Message{}, &models.Blacklist{})
}

func (g *GormDB) Ping() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (g *GormDB) Close() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
