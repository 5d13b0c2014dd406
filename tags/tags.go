package tags

import "github.com/yohamta/donburi"

// Kind enumerates the entity kinds that take part in collision dispatch.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindInhaleZone
	KindInhaleEffect
	KindShootingStar
	KindPlatform
	KindExit
	KindParticle
)

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	InhaleZone   = donburi.NewTag().SetName("InhaleZone")
	InhaleEffect = donburi.NewTag().SetName("InhaleEffect")
	ShootingStar = donburi.NewTag().SetName("ShootingStar")
	Platform     = donburi.NewTag().SetName("Platform")
	Exit         = donburi.NewTag().SetName("Exit")
	Particle     = donburi.NewTag().SetName("Particle")
)

// Resolv tags for physics collision
const (
	ResolvSolid        = "solid"
	ResolvPlayer       = "Player"
	ResolvEnemy        = "Enemy"
	ResolvInhaleZone   = "InhaleZone"
	ResolvShootingStar = "ShootingStar"
	ResolvExit         = "exit"
)

var resolvTags = map[Kind]string{
	KindPlayer:       ResolvPlayer,
	KindEnemy:        ResolvEnemy,
	KindInhaleZone:   ResolvInhaleZone,
	KindShootingStar: ResolvShootingStar,
	KindPlatform:     ResolvSolid,
	KindExit:         ResolvExit,
}

// ResolvTag returns the collision tag objects of kind k carry, or "" if the
// kind never collides.
func (k Kind) ResolvTag() string {
	return resolvTags[k]
}

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindInhaleZone:
		return "inhaleZone"
	case KindInhaleEffect:
		return "inhaleEffect"
	case KindShootingStar:
		return "shootingStar"
	case KindPlatform:
		return "platform"
	case KindExit:
		return "exit"
	case KindParticle:
		return "particle"
	}
	return "none"
}
