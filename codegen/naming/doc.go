// Package naming derives file system names for generated runtime modules.
package naming
