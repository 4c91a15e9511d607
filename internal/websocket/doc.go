// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

/*
Package websocket pushes live catalog updates to connected visualization clients.

When the background refresher pulls a fresh debris snapshot from the
catalog provider, the hub broadcasts a catalog_update message to every
connected frontend so the 3D view can re-fetch and redraw without
polling. It uses the gorilla/websocket library with a hub-client
architecture for efficient message fanout.

Key Components:

  - Hub: Central message broker that manages client connections and broadcasts
  - Client: Represents a single WebSocket connection with read/write goroutines
  - Message: Typed envelope {type, data} for all traffic

Architecture:

The package implements a hub-and-spoke pattern:

	┌──────────┐
	│   Hub    │ ← Broadcasts to all clients
	└────┬─────┘
	     │
	┌────┴─────┬─────────┬─────────┐
	│          │         │         │
	│ Client1  │ Client2 │ Client3 │ Client4
	│          │         │         │
	└──────────┴─────────┴─────────┘

Each client has two goroutines:
  - readPump: Reads from WebSocket, answers application-level pings
  - writePump: Writes to WebSocket, sends protocol pings on a ticker

Message Types:

  - catalog_update: A fresh snapshot was fetched. Data carries
    {timestamp, total_count, last_updated}; clients re-fetch /api/debris.
  - ping / pong: Application-level liveness probe initiated by clients.

Usage Example - Server:

	hub := websocket.NewHub()
	go hub.RunWithContext(ctx)

	// After a successful background refresh:
	hub.BroadcastCatalogUpdate(snapshot.TotalCount, snapshot.LastUpdated)

Usage Example - Client (JavaScript):

	const ws = new WebSocket('ws://localhost:5000/api/ws');

	ws.onmessage = (event) => {
	    const msg = JSON.parse(event.data);
	    if (msg.type === 'catalog_update') {
	        console.log(`Catalog refreshed: ${msg.data.total_count} objects`);
	        reloadDebris(); // Re-fetch /api/debris, redraw the orbit view
	    }
	};

Connection Lifecycle:

 1. Client connects via HTTP upgrade on /api/ws
 2. Hub registers client
 3. Client starts read/write goroutines
 4. Hub broadcasts catalog updates as refreshes complete
 5. Client disconnects (network error or explicit close)
 6. Hub unregisters client and cleans up

Slow consumers are disconnected rather than buffered indefinitely: a
client whose 256-message send buffer is full is removed on the next
broadcast.

Thread Safety:

The package is fully thread-safe:
  - Hub uses a mutex for client map access
  - Channels coordinate goroutine communication
  - Each client has separate read/write goroutines
  - No shared mutable state between clients

Configuration:

WebSocket timing constants:
  - writeWait: 10 seconds (time allowed to write a message)
  - pongWait: 60 seconds (time allowed to read a pong)
  - pingPeriod: 54 seconds (protocol ping interval, must be < pongWait)
  - maxMessageSize: 64 KB (inbound limit; clients only send pings)

See Also:

  - github.com/gorilla/websocket: Underlying WebSocket library
  - internal/api: WebSocket upgrade endpoint handler
  - internal/refresh: Source of catalog_update broadcasts
*/
package websocket
