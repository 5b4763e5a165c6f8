// Package storage serves pages from an object storage bucket.
//
// It wraps the MinIO Go client behind the filesystem.Filesystem
// interface, so a server configured with SetFilesystem serves a bucket
// exactly the way it serves a local directory. Both AWS S3 and
// self-hosted MinIO instances work.
//
// Resolved page paths map onto object keys by dropping the leading
// slash; a prefix with at least one object below it behaves like a
// directory, which keeps default-page resolution working for bucket
// "folders".
//
//	client, err := storage.NewClient(cfg)
//	server.SetFilesystem(client)
package storage
