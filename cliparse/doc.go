// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3640)
  - DatabaseURL: PostgreSQL connection string (required)
  - JWTSecret: Session token signing secret (required)
  - AdminEmail / AdminPassword: Bootstrap admin account (optional)

# CLI Flags

	-p               Server port
	-d               Database URL
	--jwt-secret     Session token signing secret
	--admin-email    Bootstrap admin email
	--admin-password Bootstrap admin password

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	JWT_SECRET     → --jwt-secret
	ADMIN_EMAIL    → --admin-email
	ADMIN_PASSWORD → --admin-password

CLI flags take precedence over environment variables. The server loads a
.env file (godotenv) before parsing, so a local .env works for dev.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - JWT_SECRET must be provided
  - ADMIN_PASSWORD must accompany ADMIN_EMAIL
*/
package cliparse
