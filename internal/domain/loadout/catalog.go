package loadout

// SightType selects which zoom catalog a random sight is drawn from
type SightType string

const (
	SightTypeNormal SightType = "normal"
	SightTypeACOG   SightType = "acog"
	SightTypeDMR    SightType = "dmr"
)

// OperatorCategory selects which side's operator pool to draw from
type OperatorCategory string

const (
	OperatorCategoryAttack  OperatorCategory = "attack"
	OperatorCategoryDefense OperatorCategory = "defense"
)

var attackers = []string{
	"Striker", "Deimos", "Ram", "Brava", "Grim", "Sens", "Osa", "Flores",
	"Zero", "Ace", "Iana", "Kali", "Amaru", "Nøkk", "Gridlock", "Nomad",
	"Maverick", "Lion", "Finka", "Dokkaebi", "Zofia", "Ying", "Jackal",
	"Hibana", "Capitão", "Blackbeard", "Buck", "Sledge", "Thatcher", "Ash",
	"Thermite", "Montagne", "Twitch", "Blitz", "IQ", "Fuze", "Glaz",
}

var defenders = []string{
	"Skopos", "Sentry", "Tubarao", "Fenrir", "Solis", "Azami", "Thorn",
	"Thunderbird", "Aruni", "Melusi", "Oryx", "Wamai", "Goyo", "Warden",
	"Mozzie", "Kaid", "Clash", "Maestro", "Alibi", "Vigil", "Ela", "Lesion",
	"Mira", "Echo", "Caveira", "Valkyrie", "Frost", "Mute", "Smoke",
	"Castle", "Pluse", "Doc", "Rook", "Jager", "Bandit", "Tachanka", "Kapkan",
}

var challenges = []string{
	"Pistols Only",
	"No Sprinting or Leaning",
	"1/2 Your Sense",
	"Iron Sights Only",
	"No Gadgets",
	"Only The Most Obscure Weapon",
	"No Headset/Audio",
	"Use a Full Auto Gun, but Tap-Fire",
	"2x Your Sense",
	"You Dodged a Challenge This Round",
}

var normalZoom = []string{
	"Iron Sights",
	"Holo A",
	"Holo B",
	"Holo C",
	"Holo D",
	"Red Dot A",
	"Red Dot B",
	"Red Dot C",
	"Reflex A",
	"Reflex B",
}

// The acog and dmr catalogs extend the normal one with the higher zooms
var acogZoom = append(append([]string{}, normalZoom...),
	"2.5x A", "2.5x B", "2.5x C",
)

var dmrZoom = append(append([]string{}, acogZoom...),
	"Telescopic A", "Telescopic B",
)

// Operators returns the operator pool for a category
func Operators(category OperatorCategory) ([]string, bool) {
	switch category {
	case OperatorCategoryAttack:
		return attackers, true
	case OperatorCategoryDefense:
		return defenders, true
	default:
		return nil, false
	}
}

// Sights returns the sight catalog for a zoom type
func Sights(sightType SightType) ([]string, bool) {
	switch sightType {
	case SightTypeNormal:
		return normalZoom, true
	case SightTypeACOG:
		return acogZoom, true
	case SightTypeDMR:
		return dmrZoom, true
	default:
		return nil, false
	}
}

// Challenges returns the challenge list
func Challenges() []string {
	return challenges
}
