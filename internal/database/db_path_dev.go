//go:build !prod

package database

// GetDefaultDBPath puts the client database next to the binary being developed.
func GetDefaultDBPath() string { return ClientDBFile }

func IsDevelopment() bool { return true }
