// Package settings implements loading, merging, and writing of Claude Code
// settings documents. A settings document is kept as a flexible JSON map so
// that fields the merge logic does not understand survive a round trip
// untouched; only permissions.allow and permissions.deny are interpreted.
//
// The package supports:
//   - Loading settings files with attributable parse errors
//   - Resolving input arguments through glob expansion
//   - Order-preserving deduplicating merge of permission lists
//   - Indented or compact JSON serialization
//   - Atomic output writes with optional backup of an existing file
package settings
