// Package callscore turns an earnings call transcript into a scored report.
// It extracts text from an uploaded document (plain text or PDF), submits it
// to a remote analysis service, and renders the structured response as a
// sequence of typed display blocks.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., pdf/, http/, chi/).
package callscore
