// Package storage provides sandboxed file operations rooted at the
// configured data directory. Client-supplied paths are containment
// checked before any filesystem call; escapes surface as ErrInvalidPath.
package storage
