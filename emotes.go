package twitchchat

import (
	"strconv"
	"strings"
)

// EmoteRange is the byte-offset span of a single emote occurrence inside a
// message's text, as reported by the "emotes" tag.
type EmoteRange struct {
	Start, End uint16
}

// Emote is one emote id together with every range it occurs at within the
// message, e.g. "25:0-4,6-10" for two occurrences of emote 25.
type Emote struct {
	ID     string
	Ranges []EmoteRange
}

// ParseEmotes parses the "emotes" tag value, shaped
// "id:a-b,c-d/id2:e-f", into one Emote per id. Malformed ranges are
// skipped rather than failing the whole parse; a malformed id:ranges term
// is skipped entirely.
func ParseEmotes(tagValue string) []Emote {
	if tagValue == "" {
		return nil
	}
	var emotes []Emote
	for _, term := range strings.Split(tagValue, "/") {
		id, rangesPart, ok := strings.Cut(term, ":")
		if !ok || id == "" {
			continue
		}
		var ranges []EmoteRange
		for _, r := range strings.Split(rangesPart, ",") {
			startStr, endStr, ok := strings.Cut(r, "-")
			if !ok {
				continue
			}
			start, err1 := strconv.ParseUint(startStr, 10, 16)
			end, err2 := strconv.ParseUint(endStr, 10, 16)
			if err1 != nil || err2 != nil {
				continue
			}
			ranges = append(ranges, EmoteRange{Start: uint16(start), End: uint16(end)})
		}
		emotes = append(emotes, Emote{ID: id, Ranges: ranges})
	}
	return emotes
}
