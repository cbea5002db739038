// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the feedback kiosk API server.

The service backs a happy/sad feedback kiosk: anonymous visitors rate a
sequence of questions on a tablet in one of two locations (winkel or
timmerman), and admins manage the questions and read windowed
aggregations on a dashboard.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3640 -d "postgres://..." --jwt-secret "..."

A local .env file is loaded when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - JWT_SECRET (--jwt-secret): Session token signing secret

Optional settings:

  - PORT (-p): Server port (default: 3640)
  - ADMIN_EMAIL / ADMIN_PASSWORD: Bootstrap admin account, seeded at
    startup when missing

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (questions, responses, report, session, kiosk)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Session gate, CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Session tokens and password hashing
  - db: Schema creation and admin seeding
  - realtime: Change event hub and websocket feed
  - sequencer: Kiosk session state machine
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
