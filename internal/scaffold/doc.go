// Package scaffold generates a new Madara source module inside a Paperback
// extensions repository. It powers the default command: it creates
// src/<name>/includes, copies the icon there, and renders the source
// implementation and its test from embedded templates.
package scaffold
