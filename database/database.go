package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// Required configuration: the store endpoint and its access key.
const (
	KeyHost     = "SUPABASE_DB_HOST"
	KeyPassword = "SUPABASE_DB_PASSWORD"
)

// Options describes how to reach the backing Postgres store.
type Options struct {
	Host         string
	User         string
	Password     string
	Name         string
	Port         string
	SSLMode      string
	ReplicaHosts []string
}

// OptionsFromConfig reads connection settings. A missing host or password is
// reported as errs.ErrConfigMissing.
func OptionsFromConfig(c map[string]string) (Options, error) {
	if err := config.Require(c, KeyHost, KeyPassword); err != nil {
		return Options{}, err
	}
	return Options{
		Host:         config.GetString(c, KeyHost, ""),
		User:         config.GetString(c, "SUPABASE_DB_USER", "postgres"),
		Password:     config.GetString(c, KeyPassword, ""),
		Name:         config.GetString(c, "SUPABASE_DB_NAME", "postgres"),
		Port:         config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		SSLMode:      config.GetString(c, "SUPABASE_DB_SSLMODE", "require"),
		ReplicaHosts: config.GetStrings(c, "SUPABASE_DB_REPLICA_HOSTS"),
	}, nil
}

// DSN builds a libpq keyword/value connection string for host.
func (o Options) DSN(host string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, o.User, o.Password, o.Name, o.Port, o.SSLMode)
}

// Open connects to the primary and registers any read replicas, so content
// reads can be served by a replica while inserts go to the primary.
func Open(opts Options) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector(opts.DSN(opts.Host)), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if len(opts.ReplicaHosts) > 0 {
		replicas := make([]gorm.Dialector, 0, len(opts.ReplicaHosts))
		for _, host := range opts.ReplicaHosts {
			replicas = append(replicas, dialector(opts.DSN(host)))
		}
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("error registering read replicas: %w", err)
		}
	}

	return db, nil
}

func dialector(dsn string) gorm.Dialector {
	// Supabase's pooler does not support prepared statements.
	return postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	})
}

type Database struct {
	db              *gorm.DB
	projects        *Table[models.Project]
	skills          *Table[models.Skill]
	experience      *Table[models.Experience]
	education       *Table[models.Education]
	contactMessages *Table[models.ContactMessage]
}

// New initializes a new Database struct with each table sharing one GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:              db,
		projects:        NewTable[models.Project](db),
		skills:          NewTable[models.Skill](db),
		experience:      NewTable[models.Experience](db),
		education:       NewTable[models.Education](db),
		contactMessages: NewTable[models.ContactMessage](db),
	}
}

func (d Database) Projects() *Table[models.Project] {
	return d.projects
}

func (d Database) Skills() *Table[models.Skill] {
	return d.skills
}

func (d Database) Experience() *Table[models.Experience] {
	return d.experience
}

func (d Database) Education() *Table[models.Education] {
	return d.education
}

func (d Database) ContactMessages() *Table[models.ContactMessage] {
	return d.contactMessages
}

// GetDB returns the underlying database connection for debugging purposes
func (d Database) GetDB() *gorm.DB {
	return d.db
}

// Ping runs a trivial query against the primary.
func (d Database) Ping(ctx context.Context) error {
	var result int
	if err := d.db.WithContext(ctx).Raw("SELECT 1").Scan(&result).Error; err != nil {
		return classify("ping", "database", err)
	}
	return nil
}

// Migrate creates or updates the content tables.
func (d Database) Migrate(ctx context.Context) error {
	db := d.db.WithContext(ctx)
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return classify("enable pgcrypto for", "database", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return classify("migrate", "database", err)
	}
	return nil
}
