// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package realtime fans out table change events to subscribers.

# Hub

A single Hub is created at startup and shared by every handler that
mutates the questions or responses tables:

	hub := realtime.NewHub()
	hub.Broadcast(realtime.Event{Table: realtime.TableQuestions, Event: realtime.EventInsert})

# In-Process Subscribers

The kiosk sequencer registry listens for question changes:

	sub := hub.Subscribe()
	defer sub.Unsubscribe()
	for ev := range sub.C {
		// refetch active questions
	}

Subscriber channels are buffered; a consumer that falls behind drops
events instead of blocking broadcasters. Every consumer owns its
Unsubscribe and must call it when it goes away.

# Websocket Clients

Browser clients receive the same events over GET /ws as JSON:

	{"table":"questions","event":"UPDATE"}

Clients are expected to refetch on any event for a table they care
about; events carry no row payload.
*/
package realtime
