// Package cache provides short-lived caching for upstream lookups
// (YouTube searches, Spotify searches, Spotify access tokens).
//
// Two backends implement the Storage interface:
//
//   - File: a two-tier store, an in-process map in front of a JSON cache
//     file. The file is shared between processes and guarded with an
//     advisory flock; a missing or corrupt file is recreated on the next
//     write. Expiry is tracked per item as a unix timestamp.
//   - Redis: a thin wrapper over go-redis with TTL-native expiry.
//
// Values are stored as raw JSON; callers marshal/unmarshal their own types.
// Cache misses and storage errors are never fatal, lookups fall back to the
// upstream service.
package cache
