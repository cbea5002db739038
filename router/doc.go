// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the feedback kiosk API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, hub, registry)

# Endpoints

Health:

	GET /health

Kiosk flow (public, anonymous):

	GET  /kiosk/questions               - Active questions, oldest first
	POST /kiosk/sessions                - Start a kiosk session
	GET  /kiosk/sessions/{token}        - Current question
	POST /kiosk/sessions/{token}/advance - Next question
	POST /kiosk/responses               - Submit one happy/sad rating

Realtime:

	GET /ws - Websocket change feed (questions/responses table events)

Admin auth:

	POST /admin/login   - Exchange email+password for a session token
	POST /admin/logout  - Acknowledge logout (tokens are stateless)
	GET  /admin/session - Authenticated projection of the Bearer token

Question management (admin, requires Authorization: Bearer):

	GET    /admin/questions          - List in display order
	POST   /admin/questions          - Create (appended, active)
	PUT    /admin/questions/{id}     - Update text and active flag
	DELETE /admin/questions/{id}     - Hard delete
	POST   /admin/questions/reorder  - Preview a move (no persistence)
	PUT    /admin/questions/order    - Commit the full display order

Dashboard (admin, requires Authorization: Bearer):

	GET    /admin/responses      - Response browser, newest first
	DELETE /admin/responses/{id} - Hard delete one response
	GET    /admin/report         - Windowed happy/sad aggregation

# Handler Initialization

The router creates handler instances with dependency injection:

	questionHandler := handlers.NewQuestionHandler(db, cfg, hub)
	kioskHandler := handlers.NewKioskHandler(db, registry)

Mutating handlers receive the realtime hub; the kiosk handler receives
the sequencer registry.
*/
package router
