package db

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/reservation-api/internal/config"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

// Open connects to the configured store. It does not migrate.
func Open(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gcfg := &gorm.Config{
		PrepareStmt:    cfg.DBDriver != "sqlite",
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
	if log != nil {
		gcfg.Logger = gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		// one connection keeps transactions serialized and an in-memory
		// database alive
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	dsn := DSN(cfg)

	switch cfg.DBDriver {
	case "mysql":
		return gormmysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}
}

// DSN returns DATABASE_URL when set, otherwise a driver specific DSN built
// from the individual connection parameters.
func DSN(cfg *config.Config) string {
	if cfg.DBUrl != "" {
		return cfg.DBUrl
	}

	switch cfg.DBDriver {
	case "mysql":
		mc := mysql.NewConfig()
		mc.User = cfg.DBUser
		mc.Passwd = cfg.DBPassword
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
		mc.DBName = cfg.DBName
		mc.ParseTime = true
		// report matched rather than changed rows so no-op updates still
		// count as found
		mc.ClientFoundRows = true
		mc.Loc = time.UTC
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN()
	case "postgres":
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
	default:
		return cfg.DBName
	}
}

// Migrate creates or updates the schema. On Postgres it also installs the
// exclusion constraint that rejects overlapping live reservations.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Reservation{}, "Menus", &models.ReservationMenu{}); err != nil {
		return fmt.Errorf("setup join table: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Restaurant{},
		&models.Menu{},
		&models.Reservation{},
		&models.ReservationMenu{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			return fmt.Errorf("enable btree_gist: %w", err)
		}
		if err := db.Exec(reservationOverlapConstraint).Error; err != nil {
			return fmt.Errorf("add overlap constraint: %w", err)
		}
	}

	return nil
}

const reservationOverlapConstraint = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'reservations_no_overlap'
	) THEN
		ALTER TABLE reservations
			ADD CONSTRAINT reservations_no_overlap
			EXCLUDE USING gist (
				restaurant_id WITH =,
				tstzrange(start_time, end_time, '[)') WITH &&
			)
			WHERE (deleted_at IS NULL);
	END IF;
END $$;`

func Ping(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec("SELECT 1").Error
}
