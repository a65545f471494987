package upperdb

import "context"

// Migrate applies the schema for the store's engine. Statements are idempotent;
// the migrate command and server startup both call this.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schemas[s.driver] {
		if _, err := s.sqlDB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

var schemas = map[string][]string{
	"mysql": {
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT NOT NULL AUTO_INCREMENT,
			username VARCHAR(150) NOT NULL,
			first_name VARCHAR(150) NOT NULL DEFAULT '',
			last_name VARCHAR(150) NOT NULL DEFAULT '',
			email VARCHAR(254) NOT NULL DEFAULT '',
			password_hash VARCHAR(255) NOT NULL,
			created_at DATETIME(6) NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY uq_users_username (username)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS post_groups (
			id BIGINT NOT NULL AUTO_INCREMENT,
			title VARCHAR(200) NOT NULL,
			slug VARCHAR(200) NOT NULL,
			description TEXT NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY uq_post_groups_slug (slug)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS posts (
			id BIGINT NOT NULL AUTO_INCREMENT,
			text TEXT NOT NULL,
			author_id BIGINT NOT NULL,
			group_id BIGINT NULL,
			image VARCHAR(255) NOT NULL DEFAULT '',
			created_at DATETIME(6) NOT NULL,
			PRIMARY KEY (id),
			KEY ix_posts_created_at (created_at),
			CONSTRAINT fk_posts_author FOREIGN KEY (author_id) REFERENCES users (id) ON DELETE CASCADE,
			CONSTRAINT fk_posts_group FOREIGN KEY (group_id) REFERENCES post_groups (id) ON DELETE SET NULL
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS comments (
			id BIGINT NOT NULL AUTO_INCREMENT,
			post_id BIGINT NOT NULL,
			author_id BIGINT NOT NULL,
			text TEXT NOT NULL,
			created_at DATETIME(6) NOT NULL,
			PRIMARY KEY (id),
			CONSTRAINT fk_comments_post FOREIGN KEY (post_id) REFERENCES posts (id) ON DELETE CASCADE,
			CONSTRAINT fk_comments_author FOREIGN KEY (author_id) REFERENCES users (id) ON DELETE CASCADE
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS follows (
			id BIGINT NOT NULL AUTO_INCREMENT,
			user_id BIGINT NOT NULL,
			author_id BIGINT NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY uq_follows_user_author (user_id, author_id),
			CONSTRAINT fk_follows_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
			CONSTRAINT fk_follows_author FOREIGN KEY (author_id) REFERENCES users (id) ON DELETE CASCADE
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id VARCHAR(36) NOT NULL,
			user_id BIGINT NOT NULL,
			expires_at DATETIME(6) NOT NULL,
			created_at DATETIME(6) NOT NULL,
			PRIMARY KEY (id),
			CONSTRAINT fk_sessions_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
		) ENGINE=InnoDB`,
	},
	"sqlite": {
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS post_groups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			author_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			group_id INTEGER NULL REFERENCES post_groups (id) ON DELETE SET NULL,
			image TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_posts_created_at ON posts (created_at)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			post_id INTEGER NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
			author_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			text TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS follows (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			author_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			UNIQUE (user_id, author_id)
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
	},
}
