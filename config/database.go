package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dbParts là các biến DB theo môi trường, ví dụ DEV_DB_HOST, QC_DB_HOST, PROD_DB_HOST
type dbParts struct {
	user, password, host, port, name string
}

func getDBPartsByEnv(env string) (dbParts, error) {
	var prefix string
	switch env {
	case "dev", "qc", "prod":
		prefix = strings.ToUpper(env) + "_DB_"
	default:
		return dbParts{}, fmt.Errorf("unknown environment: %s", env)
	}
	return dbParts{
		user:     os.Getenv(prefix + "USER"),
		password: os.Getenv(prefix + "PASSWORD"),
		host:     os.Getenv(prefix + "HOST"),
		port:     os.Getenv(prefix + "PORT"),
		name:     os.Getenv(prefix + "NAME"),
	}, nil
}

// BuildDSN trả về DSN theo driver
func BuildDSN(cfg DatabaseConfig, timezone string) (string, error) {
	if cfg.DSN != "" {
		return cfg.DSN, nil
	}
	p, err := getDBPartsByEnv(cfg.Env)
	if err != nil {
		return "", err
	}

	switch cfg.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			p.user, p.password, p.host, p.port, p.name), nil
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			p.host, p.user, p.password, p.name, p.port, cfg.SSL, timezone), nil
	}
}

// ConnectDB mở kết nối gorm với Postgres hoặc MySQL
func ConnectDB(cfg DatabaseConfig, timezone string) (*gorm.DB, error) {
	dsn, err := BuildDSN(cfg, timezone)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	default:
		dialector = postgres.Open(dsn)
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	log.Printf("Successfully connected to db (%s)", cfg.Driver)
	return db, nil
}
