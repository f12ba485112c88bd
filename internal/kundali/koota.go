package kundali

// Maximum points per koota. The eight maxima sum to MaxTotal.
const (
	MaxVarna       = 1
	MaxVashya      = 2
	MaxTara        = 3
	MaxYoni        = 4
	MaxGrahaMaitri = 5
	MaxGana        = 6
	MaxBhakoot     = 7
	MaxNadi        = 8
	MaxTotal       = 36
)

const taraCycle = 9

// Breakdown holds the eight koota sub-scores for an ordered pair of charts,
// plus the metadata the doshas and result labels are built from.
type Breakdown struct {
	Varna        int
	Vashya       int
	Tara         int
	TaraType     Tara
	Yoni         int
	GrahaMaitri  int
	Gana         int
	Bhakoot      int
	BhakootDosha BhakootDosha
	Nadi         int
	NadiDosha    bool
	Total        int
}

// Score computes the ashtakoota breakdown for the ordered pair (a, b).
// Varna and vashya read the pair in that order; the remaining six factors
// are direction-symmetric. The function is total: unknown attributes score
// zero for their factor and never flag a dosha.
func Score(a, b Chart) Breakdown {
	bd := Breakdown{
		Varna:       varnaScore(a.EffectiveVarna(), b.EffectiveVarna()),
		Vashya:      vashyaScore(a.MoonSign, b.MoonSign),
		Yoni:        yoniScore(a.EffectiveYoni(), b.EffectiveYoni()),
		GrahaMaitri: grahaMaitriScore(a.Lord(), b.Lord()),
		Gana:        ganaScore(a.EffectiveGana(), b.EffectiveGana()),
	}
	bd.Tara, bd.TaraType = taraScore(a.Nakshatra, b.Nakshatra)
	bd.Bhakoot, bd.BhakootDosha = bhakootScore(a.MoonSign, b.MoonSign)
	bd.Nadi, bd.NadiDosha = nadiScore(a.EffectiveNadi(), b.EffectiveNadi())

	bd.Total = bd.Varna + bd.Vashya + bd.Tara + bd.Yoni +
		bd.GrahaMaitri + bd.Gana + bd.Bhakoot + bd.Nadi

	return bd
}

func varnaScore(a, b Varna) int {
	if a == VarnaUnknown || b == VarnaUnknown {
		return 0
	}
	if a >= b {
		return MaxVarna
	}
	return 0
}

func vashyaScore(a, b Sign) int {
	a, b = signIndex(a), signIndex(b)
	if a == SignUnknown || b == SignUnknown {
		return 0
	}
	if a == b {
		return MaxVashya
	}
	for _, s := range vashyaSigns[a] {
		if s == b {
			return MaxVashya
		}
	}
	return 0
}

func taraScore(a, b Nakshatra) (int, Tara) {
	a, b = nakshatraIndex(a), nakshatraIndex(b)
	if a == NakshatraUnknown || b == NakshatraUnknown {
		return 0, TaraUnknown
	}
	rem := ((a.Index()-b.Index())%taraCycle + taraCycle) % taraCycle
	tara := Tara(rem + 1)
	if auspiciousTaras[tara] {
		return MaxTara, tara
	}
	return 0, tara
}

var auspiciousTaras = [10]bool{
	TaraSampat:      true,
	TaraKshema:      true,
	TaraSadhaka:     true,
	TaraMitra:       true,
	TaraParamMaitra: true,
}

func yoniScore(a, b Yoni) int {
	if a == YoniUnknown || b == YoniUnknown {
		return 0
	}
	return yoniScores[a][b]
}

// YoniRelation labels a yoni score for result output.
func YoniRelation(score int) string {
	switch score {
	case 4:
		return "same"
	case 3:
		return "friendly"
	case 2:
		return "neutral"
	case 1:
		return "unfriendly"
	default:
		return "hostile"
	}
}

func grahaMaitriScore(a, b Planet) int {
	if a == PlanetUnknown || b == PlanetUnknown {
		return 0
	}
	if a == b {
		return MaxGrahaMaitri
	}

	ab := planetRelations[a][b]
	ba := planetRelations[b][a]

	switch {
	case ab == RelationFriend && ba == RelationFriend:
		return MaxGrahaMaitri
	case ab == RelationEnemy && ba == RelationEnemy:
		return 0
	case ab == RelationEnemy || ba == RelationEnemy:
		return 1
	default:
		return 4
	}
}

func ganaScore(a, b Gana) int {
	if a == GanaUnknown || b == GanaUnknown {
		return 0
	}
	return ganaScores[a][b]
}

// SignDistance counts signs inclusively from a to b around the zodiac,
// so the distance from a sign to itself is 1. Unknown signs yield 0.
func SignDistance(a, b Sign) int {
	a, b = signIndex(a), signIndex(b)
	if a == SignUnknown || b == SignUnknown {
		return 0
	}
	return ((b.Index()-a.Index())%12+12)%12 + 1
}

func bhakootScore(a, b Sign) (int, BhakootDosha) {
	switch SignDistance(a, b) {
	case 0:
		return 0, BhakootNone
	case 2, 12:
		return 0, BhakootDwirdwadasha
	case 6, 8:
		return 0, BhakootShadashtaka
	default:
		return MaxBhakoot, BhakootNone
	}
}

func nadiScore(a, b Nadi) (int, bool) {
	if a == NadiUnknown || b == NadiUnknown {
		return 0, false
	}
	if a == b {
		return 0, true
	}
	return MaxNadi, false
}
