// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

/*
Package websocket pushes UI state and stats changes to browser observers.

The Hub owns the client set and fans out messages; each Client runs a
readPump and a writePump goroutine around one gorilla/websocket connection.
Observers are read-only: submissions go through the HTTP API and the
resulting state transitions arrive here through Controller.Subscribe.

Message Types:

  - state: a view.StateView after every applied transition
  - stats: usage counters once the stats load succeeds
  - ping / pong: client keepalive

Wiring:

	hub := websocket.NewHub()
	go hub.RunWithContext(ctx)
	ctrl.Subscribe(hub.BroadcastState)
	stats.Subscribe(hub.BroadcastStats)

Broadcasts never block the caller: when the hub queue is full the message is
dropped, and a client whose buffer is full is disconnected.
*/
package websocket
