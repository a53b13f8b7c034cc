// Package config reads service settings from the environment, loading a
// .env file first when one is present.
package config

import (
	"net"
	"os"
	"strconv"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultTimezone     = "Asia/Jakarta"
)

type Database struct {
	Host     string
	Port     string
	User     string
	Pass     string
	Name     string
	Timezone string
}

// DSN renders the go-sql-driver connection string.
func (d Database) DSN() string {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		logrus.Warnf("unknown timezone %q, using UTC", d.Timezone)
		loc = time.UTC
	}
	cfg := gomysql.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Pass
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(d.Host, d.Port)
	cfg.DBName = d.Name
	cfg.ParseTime = true
	cfg.Loc = loc
	return cfg.FormatDSN()
}

type Cache struct {
	Host string
	Port string
	Pass string
	DB   int
}

func (c Cache) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type Config struct {
	Database       Database
	Cache          Cache
	ServerAddress  string
	ContextTimeout time.Duration
	BloomBitSize   uint64
	AutoMigrate    bool
}

// Load reads .env (if any) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file loaded, reading process environment only")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset or malformed values.
func FromEnv() Config {
	cfg := Config{
		Database: Database{
			Host:     os.Getenv("DATABASE_HOST"),
			Port:     os.Getenv("DATABASE_PORT"),
			User:     os.Getenv("DATABASE_USER"),
			Pass:     os.Getenv("DATABASE_PASS"),
			Name:     os.Getenv("DATABASE_NAME"),
			Timezone: os.Getenv("DATABASE_TZ"),
		},
		Cache: Cache{
			Host: os.Getenv("CACHE_HOST"),
			Port: os.Getenv("CACHE_PORT"),
			Pass: os.Getenv("CACHE_PASS"),
		},
		ServerAddress: os.Getenv("SERVER_ADDRESS"),
	}
	if cfg.Database.Timezone == "" {
		cfg.Database.Timezone = defaultTimezone
	}
	if cfg.ServerAddress == "" {
		cfg.ServerAddress = defaultAddress
	}

	cacheDB, err := strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		logrus.Debug("failed to parse CACHE_DB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	cfg.Cache.DB = cacheDB

	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil || timeout <= 0 {
		logrus.Debug("failed to parse CONTEXT_TIMEOUT, using default timeout")
		timeout = defaultTimeout
	}
	cfg.ContextTimeout = time.Duration(timeout) * time.Second

	bloomBitSize, err := strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
	if err != nil || bloomBitSize == 0 {
		logrus.Debug("failed to parse BLOOM_FILTER_SIZE, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	cfg.BloomBitSize = bloomBitSize

	cfg.AutoMigrate, _ = strconv.ParseBool(os.Getenv("AUTO_MIGRATE"))
	return cfg
}
