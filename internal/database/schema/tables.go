// Package schema defines the database schema for development.
//
// DEVELOPMENT USE ONLY
// This file contains the current database schema and is used for development and testing.
// Before deploying to production, these table definitions should be converted to proper migrations.
package schema

// TableDefinitions contains all the SQL statements to create the database tables
// Don't put REFERENCES and don't put CHECK constraints in the CREATE TABLE statements
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'pendente',
		telefone VARCHAR(50) NOT NULL DEFAULT '',
		endereco VARCHAR(255) NOT NULL DEFAULT '',
		post_cod VARCHAR(20) NOT NULL DEFAULT '',
		gc_id VARCHAR(20) NOT NULL DEFAULT '',
		photo_url VARCHAR(512) NOT NULL DEFAULT '',
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS public_profiles (
		user_id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		photo_url VARCHAR(512),
		endereco VARCHAR(255),
		post_cod VARCHAR(20),
		telefone VARCHAR(50),
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS members (
		id UUID PRIMARY KEY,
		nome VARCHAR(255) NOT NULL,
		data_nascimento VARCHAR(20) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		country_code VARCHAR(10) NOT NULL DEFAULT '',
		telefone VARCHAR(50) NOT NULL DEFAULT '',
		endereco VARCHAR(255) NOT NULL DEFAULT '',
		post_cod VARCHAR(20) NOT NULL DEFAULT '',
		gc_id VARCHAR(20) NOT NULL DEFAULT '',
		quer_gc BOOLEAN NOT NULL DEFAULT FALSE,
		contacted BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		date VARCHAR(10) NOT NULL,
		time VARCHAR(10),
		location VARCHAR(255),
		image_url VARCHAR(512),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS studies (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		link VARCHAR(512),
		image_url VARCHAR(512),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS videos (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		youtube_url VARCHAR(512) NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pastors (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(255),
		photo_url VARCHAR(512),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pages (
		id VARCHAR(50) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		subtitle VARCHAR(512),
		image_url VARCHAR(512),
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS registration_forms (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		fields JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS submissions (
		id UUID PRIMARY KEY,
		form_id UUID NOT NULL,
		form_title VARCHAR(255) NOT NULL,
		form_data JSONB NOT NULL DEFAULT '{}',
		nome VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_form_id ON submissions(form_id)`,
	`CREATE INDEX IF NOT EXISTS idx_members_quer_gc ON members(quer_gc)`,
	`CREATE INDEX IF NOT EXISTS idx_members_gc_id ON members(gc_id)`,
	`CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)`,
	`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)`,
}

// TableNames lists all tables in creation order
var TableNames = []string{
	"users",
	"public_profiles",
	"members",
	"events",
	"studies",
	"videos",
	"pastors",
	"pages",
	"registration_forms",
	"submissions",
}
