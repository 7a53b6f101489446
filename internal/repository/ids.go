package repository

import (
	"math/rand"
	"strconv"
	"time"
)

// Id prefixes per entity kind
const (
	PrefixTeamMember      = "tm"
	PrefixStartup         = "st"
	PrefixProject         = "prj"
	PrefixTask            = "tsk"
	PrefixInvestor        = "inv"
	PrefixProjectInvestor = "pi"
	PrefixStartupInvestor = "si"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// IDGenerator produces a new record id for a prefix
type IDGenerator func(prefix string) string

// GenerateID returns "<prefix>_<base36 unix millis>_<4 random base36 chars>".
// Ids are not guaranteed unique; collisions are negligible at this write volume.
func GenerateID(prefix string) string {
	return idAt(prefix, time.Now())
}

func idAt(prefix string, t time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return prefix + "_" + strconv.FormatInt(t.UnixMilli(), 36) + "_" + string(suffix)
}
