// Package server holds the HTTP server configuration.
//
// It covers the listen port, the optional API key protecting the endpoints,
// and the upload size cap applied to imported spreadsheets.
package server
