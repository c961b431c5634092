// Package http provides the HTTP surface of the schedule engine.
//
// The router exposes the following endpoints:
//   - POST /schedules/generate: enumerates every conflict-free schedule for
//     the submitted course queries. Body: {"queries":["MATH140","CMSC1.."],
//     "options":{"show_full","allow_zeromin","exclude_fc","exclude_sg",
//     "exclude_sm"}}. Response: {"schedules":[{"sections":[...],"stats":
//     {...}}]} where each stat carries its raw value, its normalized [0,1]
//     score and a display string.
//   - POST /schedules/calendar: regenerates the schedules for the same body
//     plus an "index" field and returns the selected schedule as a
//     text/calendar document of weekly recurring events.
//   - GET /healthz: liveness probe.
//
// Request/response DTOs live alongside their handler so tests and
// documentation share the same ground truth.
package http
