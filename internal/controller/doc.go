// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

/*
Package controller holds the client-side state machines: the analysis
Controller and the one-shot StatsLoader.

# Analysis lifecycle

	idle --Submit(blank)--> error "Please enter a filename"       (no request)
	idle --Submit(name)---> loading --2xx--> result
	                                 --any failure--> error "Failed to analyze file. Please try again."

Result and Error are never set together. Starting a request clears both.

# Ordering

Concurrent submissions race. With last-write-wins (the default) the response
that arrives last is shown. With latest-issued every request takes the next
sequence number and a response is applied only if its number is still the
latest; older responses are dropped and counted in
filelens_stale_responses_discarded_total.

# Observers

Subscribe delivers a value copy after each transition. The websocket hub and
the interactive terminal use it to redraw.
*/
package controller
