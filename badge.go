package twitchchat

import "strings"

// BadgeKind identifies a known Twitch badge. Any badge name the client does
// not recognize decodes to BadgeUnknown with the raw name preserved.
type BadgeKind int

const (
	BadgeAdmin BadgeKind = iota
	BadgeBits
	BadgeBroadcaster
	BadgeGlobalMod
	BadgeModerator
	BadgeSubscriber
	BadgeStaff
	BadgeTurbo
	BadgePremium
	BadgeVIP
	BadgePartner
	BadgeUnknown
)

var badgeKindNames = map[string]BadgeKind{
	"admin":       BadgeAdmin,
	"bits":        BadgeBits,
	"broadcaster": BadgeBroadcaster,
	"global_mod":  BadgeGlobalMod,
	"moderator":   BadgeModerator,
	"subscriber":  BadgeSubscriber,
	"staff":       BadgeStaff,
	"turbo":       BadgeTurbo,
	"premium":     BadgePremium,
	"vip":         BadgeVIP,
	"partner":     BadgePartner,
}

// Badge is one badge attached to a PRIVMSG/USERNOTICE/etc via the "badges"
// or "badge-info" tag.
type Badge struct {
	Kind BadgeKind
	// RawName is the badge name as sent on the wire, e.g. "subscriber" or a
	// custom badge name when Kind is BadgeUnknown.
	RawName string
	// Data is whatever follows the slash: a version, a bit count, or a
	// subscriber month count, depending on the badge.
	Data string
}

// ParseBadge parses a single "name/data" badge entry. It returns false if
// entry has no slash.
func ParseBadge(entry string) (Badge, bool) {
	name, data, ok := strings.Cut(entry, "/")
	if !ok {
		return Badge{}, false
	}
	kind, known := badgeKindNames[name]
	if !known {
		kind = BadgeUnknown
	}
	return Badge{Kind: kind, RawName: name, Data: data}, true
}

// ParseBadges parses the comma-separated "badges"/"badge-info" tag value
// into its individual entries, skipping any malformed entry.
func ParseBadges(tagValue string) []Badge {
	if tagValue == "" {
		return nil
	}
	parts := strings.Split(tagValue, ",")
	badges := make([]Badge, 0, len(parts))
	for _, p := range parts {
		if b, ok := ParseBadge(p); ok {
			badges = append(badges, b)
		}
	}
	return badges
}
