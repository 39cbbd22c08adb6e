// Package browser fetches forum JSON by running an external browser
// automation command, for sites that answer plain HTTP clients with an
// anti-bot challenge.
package browser
