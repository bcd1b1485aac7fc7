package gamemap

import "fmt"

// Content identifies what occupies a map cell. Ordinary kinds live in the
// base grid; major kinds live in the sparse overlay and take precedence.
type Content uint8

const (
	Empty Content = iota
	Enemy
	NPC
	Merchant
	Treasure
	Portal

	// Major events.
	Dragon
	TreasureVault
	MasterMerchant
	AncientPortal
	BossEnemy
)

var contentNames = [...]string{
	Empty:          "empty",
	Enemy:          "enemy",
	NPC:            "npc",
	Merchant:       "merchant",
	Treasure:       "treasure",
	Portal:         "portal",
	Dragon:         "dragon",
	TreasureVault:  "treasure_vault",
	MasterMerchant: "master_merchant",
	AncientPortal:  "ancient_portal",
	BossEnemy:      "boss_enemy",
}

// IsMajor reports whether c is a major event kind.
func (c Content) IsMajor() bool { return c >= Dragon && c <= BossEnemy }

// IsPortal reports whether c is either kind of portal.
func (c Content) IsPortal() bool { return c == Portal || c == AncientPortal }

// String returns the wire name (e.g. "treasure_vault").
func (c Content) String() string {
	if int(c) < len(contentNames) {
		return contentNames[c]
	}
	return fmt.Sprintf("content(%d)", uint8(c))
}

// MarshalText encodes the wire name.
func (c Content) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// ParseContent resolves a wire name.
func ParseContent(s string) (Content, error) {
	for i, name := range contentNames {
		if name == s {
			return Content(i), nil
		}
	}
	return Empty, fmt.Errorf("unknown cell content %q", s)
}

// AllContents lists every kind in declaration order.
func AllContents() []Content {
	out := make([]Content, len(contentNames))
	for i := range contentNames {
		out[i] = Content(i)
	}
	return out
}
