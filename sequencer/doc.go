// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sequencer drives the kiosk's walk through the active questions.

# Sessions

Each kiosk visitor gets a session, created on first contact:

	token, question, exhausted := registry.Start("winkel")

A session presents one question at a time and advances after each
rating:

	advanced, question, exhausted, err := registry.Advance(token)

Advance returns false once there is no next question; the session is
then exhausted and Current yields no question. Sessions idle for more
than 30 minutes are swept.

# Ordering

The kiosk presents active questions oldest-created-first (created_at
ascending). This is a different key than the admin list, which orders by
display_order; the kiosk ordering is intentional and must not be unified
with the admin ordering without a product decision.

# Change Propagation

The registry holds a realtime hub subscription:

	registry.Listen(hub)
	defer registry.Close()

Any INSERT/UPDATE/DELETE on the questions table reloads the
active-question snapshot and resets every live session to the first
question. A visitor mid-flow starts over against the new set; this is
the accepted behavior when an admin edits questions while kiosks are in
use.
*/
package sequencer
