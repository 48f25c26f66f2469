// Command download fetches the save files players uploaded and writes them
// to disk, one folder per player.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

type Settings struct {
	DbUser     string `env:"YOLKA_DBUSER,required"`
	DbPassword string `env:"YOLKA_DBPASSWORD"`
	DbAddr     string `env:"YOLKA_DBADDR" envDefault:"127.0.0.1:3306"`
	DbName     string `env:"YOLKA_DBNAME,required"`
	OutDir     string `env:"YOLKA_OUTDIR" envDefault:"."`
}

type dbRow struct {
	uploadedAt     time.Time
	user           string
	releaseVersion int64
	id             uuid.UUID
	data           []byte
}

func main() {
	logger := log.New(os.Stderr, "[download] ", log.LstdFlags)
	settings, err := env.ParseAs[Settings]()
	Check(err)
	n, err := DownloadSaves(settings, logger)
	Check(err)
	logger.Printf("downloaded %d saves to %s", n, settings.OutDir)
}

func DownloadSaves(settings Settings, logger *log.Logger) (int, error) {
	db, err := ConnectToDbSql(settings)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT " +
		"uploaded_at, " +
		"user, " +
		"COALESCE(release_version, -1), " +
		"id, " +
		"save " +
		"FROM saves")
	if err != nil {
		return 0, err
	}
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.uploadedAt, &row.user, &row.releaseVersion,
			&row.id, &row.data)
		if err != nil {
			return 0, err
		}
		dbRows = append(dbRows, row)
	}
	if err = rows.Err(); err != nil {
		return 0, err
	}

	for i := range dbRows {
		name := filepath.Join(settings.OutDir, SaveFilePath(dbRows[i]))
		if err = os.MkdirAll(filepath.Dir(name), 0755); err != nil {
			return i, err
		}
		if err = os.WriteFile(name, dbRows[i].data, 0644); err != nil {
			return i, err
		}
		logger.Printf("wrote %s", name)
	}
	return len(dbRows), nil
}

// SaveFilePath is where a save goes, relative to the output folder:
// <user>/<upload moment>-<release>-<id>.gamesave. A release of -1 means the
// column was NULL.
func SaveFilePath(row dbRow) string {
	dir := sanitizeUser(row.user)
	m := row.uploadedAt
	return filepath.Join(dir, fmt.Sprintf(
		"%d%02d%02d-%02d%02d%02d-r%d-%s.gamesave", m.Year(), m.Month(),
		m.Day(), m.Hour(), m.Minute(), m.Second(), row.releaseVersion, row.id))
}

// sanitizeUser keeps uploaded user names from escaping the output folder.
func sanitizeUser(user string) string {
	user = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, strings.TrimSpace(user))
	if user == "" || user == "." || user == ".." {
		return "unknown"
	}
	return user
}

func ConnectToDbSql(settings Settings) (*sql.DB, error) {
	cfg := mysql.Config{
		User:                 settings.DbUser,
		Passwd:               settings.DbPassword,
		Net:                  "tcp",
		Addr:                 settings.DbAddr,
		DBName:               settings.DbName,
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}
