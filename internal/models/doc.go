// Package models defines the data model for the podcast-translation client:
// the server-owned entities (User, Podcast, Translation, Episode) and the
// client application state tree built from them.
package models
