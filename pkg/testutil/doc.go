// Package testutil provides fakes and helpers shared by clipfix tests.
//
// Key components:
//   - MemoryClipboard: in-memory clipboard with failure injection
//   - ManualNotifier: a notifier the test fires by hand
//   - CreateFile: real-filesystem helper for file backend tests
package testutil
