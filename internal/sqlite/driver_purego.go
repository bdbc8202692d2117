//go:build !sqlite_cgo

package sqlite

// Pure Go driver, no C toolchain needed.
import _ "modernc.org/sqlite"

const DriverName = "sqlite"
