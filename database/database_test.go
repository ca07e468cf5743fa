package database

import (
	"context"
	"errors"
	"testing"

	"ledger/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestDSN_MySQL(t *testing.T) {
	dsn, err := DSN(config.DatabaseConfig{
		Driver:   config.DriverMySQL,
		Host:     "127.0.0.1",
		Port:     "3306",
		Username: "root",
		Password: "secret",
		DBName:   "ledger",
	})
	require.NoError(t, err)
	assert.Equal(t, "root:secret@tcp(127.0.0.1:3306)/ledger?charset=utf8mb4&parseTime=True&loc=UTC", dsn)
}

func TestDSN_Postgres(t *testing.T) {
	dsn, err := DSN(config.DatabaseConfig{
		Driver:   config.DriverPostgres,
		Host:     "pg",
		Port:     "5432",
		Username: "ledger",
		Password: "pw",
		DBName:   "ledger",
		SSLMode:  "require",
	})
	require.NoError(t, err)
	assert.Equal(t, "host=pg user=ledger password=pw dbname=ledger port=5432 sslmode=require TimeZone=UTC", dsn)
}

func TestDSN_SQLiteEnablesForeignKeys(t *testing.T) {
	dsn, err := DSN(config.DatabaseConfig{Driver: config.DriverSQLite, Path: "data/ledger.db"})
	require.NoError(t, err)
	assert.Contains(t, dsn, "data/ledger.db?")
	assert.Contains(t, dsn, "_foreign_keys=on")
}

func TestDSN_UnknownDriver(t *testing.T) {
	_, err := DSN(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)

	_, err = Dialector(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestDialector_Name(t *testing.T) {
	d, err := Dialector(config.DatabaseConfig{Driver: config.DriverMySQL, Host: "h", DBName: "d"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	d, err = Dialector(config.DatabaseConfig{Driver: config.DriverPostgres, Host: "h", DBName: "d"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())
}

func TestPing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	mock.ExpectPing()
	assert.NoError(t, Ping(context.Background(), gormDB))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, Ping(context.Background(), gormDB))

	require.NoError(t, mock.ExpectationsWereMet())
}
