// Package filesync uploads files to the backend's object store.
//
// Files flow through three stages connected by bounded channels:
//
//  1. The checksum stage snapshots local files into the staging
//     directory and computes content digests.
//  2. The prepare batcher coalesces per-file "create file" mutations
//     into batched GraphQL calls that return presigned upload URLs.
//  3. The upload stage schedules the actual object-store writes under
//     a concurrency limit and gates artifact commits on the completion
//     of every file belonging to the artifact.
//
// FilePusher is the entry point tying the stages together.
package filesync
