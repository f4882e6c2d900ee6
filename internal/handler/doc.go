// Package handler serves the local page Auth0 redirects to after login.
//
// Auth0's implicit flow returns the access token in the URL fragment, which
// browsers never send to the server. The callback page therefore reads
// location.hash in the browser and posts it back to /token, where it is
// parsed and handed to the waiting client exactly once.
package handler
