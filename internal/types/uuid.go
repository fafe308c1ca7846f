package types

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	UUID_PREFIX_LOCATION    = "loc"
	UUID_PREFIX_SHIFT       = "shift"
	UUID_PREFIX_PATROL      = "patrol"
	UUID_PREFIX_PATROL_LOG  = "plog"
	UUID_PREFIX_CALLOUT     = "callout"
	UUID_PREFIX_INVOICE     = "inv"
	UUID_PREFIX_LINE_ITEM   = "line"
	UUID_PREFIX_REQUEST     = "req"
	UUID_PREFIX_ENVIRONMENT = "env"
)

// GenerateUUID returns a lowercase ULID.
func GenerateUUID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String()
}

// GenerateUUIDWithPrefix returns a prefixed ULID, e.g. "inv_01H...".
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
