// Package testutil provides shared helpers for tests that depend on the
// process environment.
//
// Resolution is driven entirely by environment variables, so tests must pin
// every variable they read. PinEnv and TempHome give each test a fully
// determined environment; CreateFile builds the fixture files configuration
// tests read back.
package testutil
