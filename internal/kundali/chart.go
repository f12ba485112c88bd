package kundali

import "strings"

// Sign is a zodiac sign in zodiacal order. The zero value means unknown.
type Sign int

const (
	SignUnknown Sign = iota
	Aries
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// Nakshatra is a lunar mansion in canonical order starting from Ashwini.
// The zero value means unknown.
type Nakshatra int

const (
	NakshatraUnknown Nakshatra = iota
	Ashwini
	Bharani
	Krittika
	Rohini
	Mrigashira
	Ardra
	Punarvasu
	Pushya
	Ashlesha
	Magha
	PurvaPhalguni
	UttaraPhalguni
	Hasta
	Chitra
	Swati
	Vishakha
	Anuradha
	Jyeshtha
	Mula
	PurvaAshadha
	UttaraAshadha
	Shravana
	Dhanishta
	Shatabhisha
	PurvaBhadrapada
	UttaraBhadrapada
	Revati
)

// Varna ranks follow the constant order: a higher value is the higher caste.
type Varna int

const (
	VarnaUnknown Varna = iota
	VarnaShudra
	VarnaVaishya
	VarnaKshatriya
	VarnaBrahmin
)

// VashyaGroup is the classical fivefold nature of a sign. It is summary
// metadata only; vashya scoring works on per-sign amenable sets.
type VashyaGroup int

const (
	VashyaUnknown VashyaGroup = iota
	VashyaChatushpada
	VashyaManava
	VashyaJalachara
	VashyaVanachara
	VashyaKeeta
)

// Yoni is the animal archetype of a nakshatra.
type Yoni int

const (
	YoniUnknown Yoni = iota
	YoniHorse
	YoniElephant
	YoniSheep
	YoniSerpent
	YoniDog
	YoniCat
	YoniRat
	YoniCow
	YoniBuffalo
	YoniTiger
	YoniDeer
	YoniMonkey
	YoniMongoose
	YoniLion
)

// Gana is the temperament class of a nakshatra.
type Gana int

const (
	GanaUnknown Gana = iota
	GanaDeva
	GanaManushya
	GanaRakshasa
)

// Nadi is the pulse category of a nakshatra.
type Nadi int

const (
	NadiUnknown Nadi = iota
	NadiAdi
	NadiMadhya
	NadiAntya
)

// Planet identifies a sign lord.
type Planet int

const (
	PlanetUnknown Planet = iota
	PlanetSun
	PlanetMoon
	PlanetMars
	PlanetMercury
	PlanetJupiter
	PlanetVenus
	PlanetSaturn
)

// Tara is the star-count class, numbered 1 to 9.
type Tara int

const (
	TaraUnknown Tara = iota
	TaraJanma
	TaraSampat
	TaraVipat
	TaraKshema
	TaraPratyari
	TaraSadhaka
	TaraVadha
	TaraMitra
	TaraParamMaitra
)

// BhakootDosha is the affliction pattern detected from the sign distance.
type BhakootDosha int

const (
	BhakootNone BhakootDosha = iota
	BhakootDwirdwadasha
	BhakootShadashtaka
)

// Signs lists the twelve signs in zodiacal order.
var Signs = []Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// Nakshatras lists the twenty-seven lunar mansions in canonical order.
var Nakshatras = []Nakshatra{
	Ashwini, Bharani, Krittika, Rohini, Mrigashira, Ardra,
	Punarvasu, Pushya, Ashlesha, Magha, PurvaPhalguni, UttaraPhalguni,
	Hasta, Chitra, Swati, Vishakha, Anuradha, Jyeshtha,
	Mula, PurvaAshadha, UttaraAshadha, Shravana, Dhanishta, Shatabhisha,
	PurvaBhadrapada, UttaraBhadrapada, Revati,
}

var signNames = [...]string{
	SignUnknown: "unknown",
	Aries:       "Aries",
	Taurus:      "Taurus",
	Gemini:      "Gemini",
	Cancer:      "Cancer",
	Leo:         "Leo",
	Virgo:       "Virgo",
	Libra:       "Libra",
	Scorpio:     "Scorpio",
	Sagittarius: "Sagittarius",
	Capricorn:   "Capricorn",
	Aquarius:    "Aquarius",
	Pisces:      "Pisces",
}

var nakshatraNames = [...]string{
	NakshatraUnknown: "unknown",
	Ashwini:          "Ashwini",
	Bharani:          "Bharani",
	Krittika:         "Krittika",
	Rohini:           "Rohini",
	Mrigashira:       "Mrigashira",
	Ardra:            "Ardra",
	Punarvasu:        "Punarvasu",
	Pushya:           "Pushya",
	Ashlesha:         "Ashlesha",
	Magha:            "Magha",
	PurvaPhalguni:    "Purva Phalguni",
	UttaraPhalguni:   "Uttara Phalguni",
	Hasta:            "Hasta",
	Chitra:           "Chitra",
	Swati:            "Swati",
	Vishakha:         "Vishakha",
	Anuradha:         "Anuradha",
	Jyeshtha:         "Jyeshtha",
	Mula:             "Mula",
	PurvaAshadha:     "Purva Ashadha",
	UttaraAshadha:    "Uttara Ashadha",
	Shravana:         "Shravana",
	Dhanishta:        "Dhanishta",
	Shatabhisha:      "Shatabhisha",
	PurvaBhadrapada:  "Purva Bhadrapada",
	UttaraBhadrapada: "Uttara Bhadrapada",
	Revati:           "Revati",
}

var varnaNames = [...]string{
	VarnaUnknown:   "unknown",
	VarnaShudra:    "Shudra",
	VarnaVaishya:   "Vaishya",
	VarnaKshatriya: "Kshatriya",
	VarnaBrahmin:   "Brahmin",
}

var vashyaGroupNames = [...]string{
	VashyaUnknown:     "unknown",
	VashyaChatushpada: "Chatushpada",
	VashyaManava:      "Manava",
	VashyaJalachara:   "Jalachara",
	VashyaVanachara:   "Vanachara",
	VashyaKeeta:       "Keeta",
}

var yoniNames = [...]string{
	YoniUnknown:  "unknown",
	YoniHorse:    "Horse",
	YoniElephant: "Elephant",
	YoniSheep:    "Sheep",
	YoniSerpent:  "Serpent",
	YoniDog:      "Dog",
	YoniCat:      "Cat",
	YoniRat:      "Rat",
	YoniCow:      "Cow",
	YoniBuffalo:  "Buffalo",
	YoniTiger:    "Tiger",
	YoniDeer:     "Deer",
	YoniMonkey:   "Monkey",
	YoniMongoose: "Mongoose",
	YoniLion:     "Lion",
}

var ganaNames = [...]string{
	GanaUnknown:  "unknown",
	GanaDeva:     "Deva",
	GanaManushya: "Manushya",
	GanaRakshasa: "Rakshasa",
}

var nadiNames = [...]string{
	NadiUnknown: "unknown",
	NadiAdi:     "Adi",
	NadiMadhya:  "Madhya",
	NadiAntya:   "Antya",
}

var planetNames = [...]string{
	PlanetUnknown: "unknown",
	PlanetSun:     "Sun",
	PlanetMoon:    "Moon",
	PlanetMars:    "Mars",
	PlanetMercury: "Mercury",
	PlanetJupiter: "Jupiter",
	PlanetVenus:   "Venus",
	PlanetSaturn:  "Saturn",
}

var taraNames = [...]string{
	TaraUnknown:     "unknown",
	TaraJanma:       "Janma",
	TaraSampat:      "Sampat",
	TaraVipat:       "Vipat",
	TaraKshema:      "Kshema",
	TaraPratyari:    "Pratyari",
	TaraSadhaka:     "Sadhaka",
	TaraVadha:       "Vadha",
	TaraMitra:       "Mitra",
	TaraParamMaitra: "Param Maitra",
}

var bhakootDoshaNames = [...]string{
	BhakootNone:         "none",
	BhakootDwirdwadasha: "dwirdwadasha",
	BhakootShadashtaka:  "shadashtaka",
}

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return signNames[SignUnknown]
	}
	return signNames[s]
}

// Index returns the zero-based zodiacal position, -1 for unknown.
func (s Sign) Index() int { return int(s) - 1 }

func (n Nakshatra) String() string {
	if n < Ashwini || n > Revati {
		return nakshatraNames[NakshatraUnknown]
	}
	return nakshatraNames[n]
}

// Index returns the zero-based canonical position, -1 for unknown.
func (n Nakshatra) Index() int { return int(n) - 1 }

func (v Varna) String() string {
	if v < VarnaShudra || v > VarnaBrahmin {
		return varnaNames[VarnaUnknown]
	}
	return varnaNames[v]
}

func (v VashyaGroup) String() string {
	if v < VashyaChatushpada || v > VashyaKeeta {
		return vashyaGroupNames[VashyaUnknown]
	}
	return vashyaGroupNames[v]
}

func (y Yoni) String() string {
	if y < YoniHorse || y > YoniLion {
		return yoniNames[YoniUnknown]
	}
	return yoniNames[y]
}

func (g Gana) String() string {
	if g < GanaDeva || g > GanaRakshasa {
		return ganaNames[GanaUnknown]
	}
	return ganaNames[g]
}

func (n Nadi) String() string {
	if n < NadiAdi || n > NadiAntya {
		return nadiNames[NadiUnknown]
	}
	return nadiNames[n]
}

func (p Planet) String() string {
	if p < PlanetSun || p > PlanetSaturn {
		return planetNames[PlanetUnknown]
	}
	return planetNames[p]
}

func (t Tara) String() string {
	if t < TaraJanma || t > TaraParamMaitra {
		return taraNames[TaraUnknown]
	}
	return taraNames[t]
}

func (d BhakootDosha) String() string {
	if d < BhakootNone || d > BhakootShadashtaka {
		return bhakootDoshaNames[BhakootNone]
	}
	return bhakootDoshaNames[d]
}

var (
	signsByName      = make(map[string]Sign)
	nakshatrasByName = make(map[string]Nakshatra)
	varnasByName     = make(map[string]Varna)
	vashyaByName     = make(map[string]VashyaGroup)
	yonisByName      = make(map[string]Yoni)
	ganasByName      = make(map[string]Gana)
	nadisByName      = make(map[string]Nadi)
)

func init() {
	for _, s := range Signs {
		signsByName[normalizeName(s.String())] = s
	}
	for _, n := range Nakshatras {
		nakshatrasByName[normalizeName(n.String())] = n
	}
	for v := VarnaShudra; v <= VarnaBrahmin; v++ {
		varnasByName[normalizeName(v.String())] = v
	}
	for g := VashyaChatushpada; g <= VashyaKeeta; g++ {
		vashyaByName[normalizeName(g.String())] = g
	}
	for y := YoniHorse; y <= YoniLion; y++ {
		yonisByName[normalizeName(y.String())] = y
	}
	for g := GanaDeva; g <= GanaRakshasa; g++ {
		ganasByName[normalizeName(g.String())] = g
	}
	for n := NadiAdi; n <= NadiAntya; n++ {
		nadisByName[normalizeName(n.String())] = n
	}
}

// normalizeName folds case, trims, and treats underscores and hyphens as
// spaces so payload spellings like "purva_phalguni" resolve.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

// ParseSign resolves a sign by canonical name, case-insensitively.
func ParseSign(s string) (Sign, bool) {
	sign, ok := signsByName[normalizeName(s)]
	return sign, ok
}

// ParseNakshatra resolves a lunar mansion by canonical name, case-insensitively.
func ParseNakshatra(s string) (Nakshatra, bool) {
	n, ok := nakshatrasByName[normalizeName(s)]
	return n, ok
}

func ParseVarna(s string) (Varna, bool) {
	v, ok := varnasByName[normalizeName(s)]
	return v, ok
}

func ParseVashyaGroup(s string) (VashyaGroup, bool) {
	g, ok := vashyaByName[normalizeName(s)]
	return g, ok
}

func ParseYoni(s string) (Yoni, bool) {
	y, ok := yonisByName[normalizeName(s)]
	return y, ok
}

func ParseGana(s string) (Gana, bool) {
	g, ok := ganasByName[normalizeName(s)]
	return g, ok
}

func ParseNadi(s string) (Nadi, bool) {
	n, ok := nadisByName[normalizeName(s)]
	return n, ok
}

// Chart is the validated set of birth-chart attributes for one person.
// Category fields left at their zero value are derived from the
// correspondence tables on access.
type Chart struct {
	ID        string
	MoonSign  Sign
	Nakshatra Nakshatra
	Pada      int // lunar-mansion quarter 1..4, 0 when not provided
	MarsHouse int // 1..12, 0 when not provided
	MarsSign  Sign
	Spice     int // relationship-intensity preference 1..10, 0 when not provided

	Varna  Varna
	Vashya VashyaGroup
	Yoni   Yoni
	Gana   Gana
	Nadi   Nadi
}

// Lord returns the ruling planet of the chart's moon sign.
func (c Chart) Lord() Planet { return signLords[signIndex(c.MoonSign)] }

// EffectiveVarna returns the override when set, the sign-derived varna
// otherwise. Out-of-range overrides count as unset.
func (c Chart) EffectiveVarna() Varna {
	if c.Varna >= VarnaShudra && c.Varna <= VarnaBrahmin {
		return c.Varna
	}
	return signVarnas[signIndex(c.MoonSign)]
}

// EffectiveVashya returns the override when set, the sign-derived group otherwise.
func (c Chart) EffectiveVashya() VashyaGroup {
	if c.Vashya >= VashyaChatushpada && c.Vashya <= VashyaKeeta {
		return c.Vashya
	}
	return signVashyaGroups[signIndex(c.MoonSign)]
}

// EffectiveYoni returns the override when set, the nakshatra-derived animal otherwise.
func (c Chart) EffectiveYoni() Yoni {
	if c.Yoni >= YoniHorse && c.Yoni <= YoniLion {
		return c.Yoni
	}
	return nakshatraYonis[nakshatraIndex(c.Nakshatra)]
}

// EffectiveGana returns the override when set, the nakshatra-derived temperament otherwise.
func (c Chart) EffectiveGana() Gana {
	if c.Gana >= GanaDeva && c.Gana <= GanaRakshasa {
		return c.Gana
	}
	return nakshatraGanas[nakshatraIndex(c.Nakshatra)]
}

// EffectiveNadi returns the override when set, the nakshatra-derived pulse otherwise.
func (c Chart) EffectiveNadi() Nadi {
	if c.Nadi >= NadiAdi && c.Nadi <= NadiAntya {
		return c.Nadi
	}
	return nakshatraNadis[nakshatraIndex(c.Nakshatra)]
}

// signIndex clamps out-of-range signs to the unknown slot of the sign tables.
func signIndex(s Sign) Sign {
	if s < Aries || s > Pisces {
		return SignUnknown
	}
	return s
}

// nakshatraIndex clamps out-of-range nakshatras to the unknown slot of the
// nakshatra tables.
func nakshatraIndex(n Nakshatra) Nakshatra {
	if n < Ashwini || n > Revati {
		return NakshatraUnknown
	}
	return n
}
