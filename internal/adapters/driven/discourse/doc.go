// Package discourse fetches JSON documents from a Discourse forum.
//
// Client talks to the forum's JSON endpoints over HTTP with a proactive
// token-bucket limiter and maps failures onto the domain error set. Fallback
// composes two fetchers and switches to the second only when the first is
// stopped by an anti-bot challenge.
package discourse
