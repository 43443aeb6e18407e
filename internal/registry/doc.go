// Package registry tracks physical devices for the Sweet Models API.
//
// It provides:
//   - A SQLite-backed device repository (insert, lookup, newest-first list)
//   - A Registry service owning server-assigned fields (UUID, status
//     default, creation timestamp)
//   - MAC-address uniqueness mapped onto ErrDuplicateMAC
//
// Devices are write-once: there are no update or delete operations.
// Timestamps are stored with fixed-width nanosecond precision so the
// store's lexical ordering matches chronological ordering.
package registry
