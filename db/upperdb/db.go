package upperdb

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/upper/db/v4"
	upmysql "github.com/upper/db/v4/adapter/mysql"
	"github.com/upper/db/v4/adapter/sqlite"

	"github.com/yatube/yatube-be/config"
	db2 "github.com/yatube/yatube-be/db"
)

// Store implements db.Database on top of upper/db. Production runs on MySQL;
// tests and local runs use SQLite.
type Store struct {
	*UserDB
	*GroupDB
	*PostDB
	*CommentDB
	*FollowDB
	*SessionDB
	driver string
	sess   db.Session
	sqlDB  *sql.DB
}

var _ db2.Database = (*Store)(nil)

func Open(cfg *config.Config) (*Store, error) {
	switch cfg.DBDriver {
	case "mysql":
		return openMySQL(cfg)
	case "sqlite":
		return openSQLite(cfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

func openMySQL(cfg *config.Config) (*Store, error) {
	sqlDB, err := sql.Open("mysql",
		fmt.Sprintf("%s:%s@tcp(%s)/%s?tls=true&parseTime=true",
			cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBName))
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxIdleTime(0)

	sess, err := upmysql.New(sqlDB)
	if err != nil {
		return nil, err
	}
	return newStore("mysql", sess, sqlDB), nil
}

func openSQLite(cfg *config.Config) (*Store, error) {
	sess, err := sqlite.Open(sqlite.ConnectionURL{
		Database: cfg.DBPath,
		Options: map[string]string{
			// cascades on posts/comments/follows depend on this pragma
			"_foreign_keys": "1",
		},
	})
	if err != nil {
		return nil, err
	}
	return newStore("sqlite", sess, sess.Driver().(*sql.DB)), nil
}

func newStore(driver string, sess db.Session, sqlDB *sql.DB) *Store {
	return &Store{
		UserDB:    getUserDB(sess),
		GroupDB:   getGroupDB(sess),
		PostDB:    getPostDB(sess),
		CommentDB: getCommentDB(sess),
		FollowDB:  getFollowDB(sess),
		SessionDB: getSessionDB(sess),
		driver:    driver,
		sess:      sess,
		sqlDB:     sqlDB,
	}
}

func (s *Store) GetSQLDB() *sql.DB {
	return s.sqlDB
}

func (s *Store) Close() error {
	return s.sess.Close()
}
