// Package server runs the short-lived local HTTP(S) listener bound to the
// environment's callback URL during an interactive login.
package server
