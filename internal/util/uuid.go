package util

import "regexp"

// uuidPattern : строгий формат 8-4-4-4-12, без urn:/фигурных скобок,
// которые принимает uuid.Parse
var uuidPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// IsValidUUID проверяет формат UUID до любых обращений к БД или Drive
func IsValidUUID(s string) bool {
	return uuidPattern.MatchString(s)
}
