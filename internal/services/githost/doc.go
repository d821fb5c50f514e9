// Package githost mirrors the daily output CSV to a file in a git-hosted
// repository through the contents API.
//
// The flow matches the API contract: fetch the current file to learn its
// blob SHA (a 404 means the file does not exist yet), then commit the full
// replacement content base64-encoded together with that SHA, the target
// branch, and committer identity.
package githost
