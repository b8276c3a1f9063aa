package service

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// refID builds short prefixed references like "pay_card_3fa85f64". The 8 hex
// chars come from a fresh uuid; uniqueness rides on the identifier space.
func refID(prefix string) string {
	id := uuid.New()
	return prefix + hex.EncodeToString(id[:])[:8]
}

// upperRef is refID for human-scannable order/tracking codes ("ORD3FA85F64").
func upperRef(prefix string) string {
	id := uuid.New()
	return prefix + strings.ToUpper(hex.EncodeToString(id[:])[:8])
}
