// Package journey models a personal music-discovery history as a small
// directed graph.
//
// # Overview
//
// A [Journey] holds [Node] values (an artist, album or band) and [Edge]
// values (the question that led from one to the next). Nodes carry a
// [Status] describing where they sit in the listening journey:
//
//   - done: listened and liked
//   - current: currently listening
//   - next: next in the queue
//   - rejected: did not like
//   - backlog: everything else
//
// Each status maps to a fixed background/border color pair through
// [Colors]. Unknown statuses fall back to the backlog pair.
//
// # Building
//
//	j := journey.New()
//	_ = j.AddNode(journey.Node{ID: "Cream", Label: "Cream", Status: journey.StatusDone})
//	_ = j.AddNode(journey.Node{ID: "BlindFaith", Label: "Blind Faith", Status: journey.StatusDone})
//	_ = j.AddEdge(journey.Edge{From: "Cream", To: "BlindFaith", Label: "What after the breakup?"})
//
// [Journey.AddEdge] rejects endpoints that were not added first, so a
// journey built through the API always satisfies the endpoint invariant.
// Journeys decoded from TOML with [Load] are checked with [Journey.Validate].
//
// # Built-in history
//
// [History] returns the author's own journey, the data set rendered by the
// musicmap command when no journey file is given.
package journey
