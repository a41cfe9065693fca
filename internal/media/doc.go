// Package media defines the per-media working directory layout and the weak
// metadata document written by the ingest collaborator.
package media
