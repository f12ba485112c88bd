package kundali

// The correspondence tables below are package-level immutable values; slot 0
// of every array is the unknown slot and stays at the zero value so lookups
// with unknown inputs degrade to a zero contribution.

// signVarnas assigns castes by element: water Brahmin, fire Kshatriya,
// earth Vaishya, air Shudra.
var signVarnas = [13]Varna{
	Aries:       VarnaKshatriya,
	Taurus:      VarnaVaishya,
	Gemini:      VarnaShudra,
	Cancer:      VarnaBrahmin,
	Leo:         VarnaKshatriya,
	Virgo:       VarnaVaishya,
	Libra:       VarnaShudra,
	Scorpio:     VarnaBrahmin,
	Sagittarius: VarnaKshatriya,
	Capricorn:   VarnaVaishya,
	Aquarius:    VarnaShudra,
	Pisces:      VarnaBrahmin,
}

// vashyaSigns lists the signs amenable to each sign. Scoring checks whether
// the second sign appears in the first sign's set.
var vashyaSigns = [13][]Sign{
	Aries:       {Leo, Scorpio},
	Taurus:      {Cancer, Libra},
	Gemini:      {Virgo},
	Cancer:      {Scorpio, Sagittarius},
	Leo:         {Libra},
	Virgo:       {Gemini, Pisces},
	Libra:       {Virgo, Capricorn},
	Scorpio:     {Cancer},
	Sagittarius: {Pisces},
	Capricorn:   {Aries, Aquarius},
	Aquarius:    {Aries},
	Pisces:      {Capricorn},
}

// signVashyaGroups carries the classical fivefold nature per sign, used only
// in person summaries.
var signVashyaGroups = [13]VashyaGroup{
	Aries:       VashyaChatushpada,
	Taurus:      VashyaChatushpada,
	Gemini:      VashyaManava,
	Cancer:      VashyaJalachara,
	Leo:         VashyaVanachara,
	Virgo:       VashyaManava,
	Libra:       VashyaManava,
	Scorpio:     VashyaKeeta,
	Sagittarius: VashyaChatushpada,
	Capricorn:   VashyaJalachara,
	Aquarius:    VashyaManava,
	Pisces:      VashyaJalachara,
}

var nakshatraYonis = [28]Yoni{
	Ashwini:          YoniHorse,
	Bharani:          YoniElephant,
	Krittika:         YoniSheep,
	Rohini:           YoniSerpent,
	Mrigashira:       YoniSerpent,
	Ardra:            YoniDog,
	Punarvasu:        YoniCat,
	Pushya:           YoniSheep,
	Ashlesha:         YoniCat,
	Magha:            YoniRat,
	PurvaPhalguni:    YoniRat,
	UttaraPhalguni:   YoniCow,
	Hasta:            YoniBuffalo,
	Chitra:           YoniTiger,
	Swati:            YoniBuffalo,
	Vishakha:         YoniTiger,
	Anuradha:         YoniDeer,
	Jyeshtha:         YoniDeer,
	Mula:             YoniDog,
	PurvaAshadha:     YoniMonkey,
	UttaraAshadha:    YoniMongoose,
	Shravana:         YoniMonkey,
	Dhanishta:        YoniLion,
	Shatabhisha:      YoniHorse,
	PurvaBhadrapada:  YoniLion,
	UttaraBhadrapada: YoniCow,
	Revati:           YoniElephant,
}

// yoniScores is symmetric with 4 on the diagonal and the seven sworn-enemy
// pairs at zero. Column order follows the Yoni constants (Horse, Elephant,
// Sheep, Serpent, Dog, Cat, Rat, Cow, Buffalo, Tiger, Deer, Monkey,
// Mongoose, Lion); the leading zero in each row is the unknown column.
var yoniScores = [15][15]int{
	YoniHorse:    {0, 4, 2, 2, 3, 2, 2, 2, 1, 0, 1, 3, 3, 2, 1},
	YoniElephant: {0, 2, 4, 3, 3, 2, 2, 2, 2, 3, 1, 2, 3, 2, 0},
	YoniSheep:    {0, 2, 3, 4, 2, 1, 2, 1, 3, 3, 1, 2, 0, 3, 1},
	YoniSerpent:  {0, 3, 3, 2, 4, 2, 1, 1, 1, 1, 2, 2, 2, 0, 2},
	YoniDog:      {0, 2, 2, 1, 2, 4, 2, 1, 2, 2, 1, 0, 2, 1, 1},
	YoniCat:      {0, 2, 2, 2, 1, 2, 4, 0, 2, 2, 1, 3, 3, 2, 1},
	YoniRat:      {0, 2, 2, 1, 1, 1, 0, 4, 2, 2, 2, 2, 2, 1, 2},
	YoniCow:      {0, 1, 2, 3, 1, 2, 2, 2, 4, 3, 0, 3, 2, 2, 1},
	YoniBuffalo:  {0, 0, 3, 3, 1, 2, 2, 2, 3, 4, 1, 2, 2, 2, 2},
	YoniTiger:    {0, 1, 1, 1, 2, 1, 1, 2, 0, 1, 4, 1, 1, 2, 1},
	YoniDeer:     {0, 3, 2, 2, 2, 0, 3, 2, 3, 2, 1, 4, 2, 2, 2},
	YoniMonkey:   {0, 3, 3, 0, 2, 2, 3, 2, 2, 2, 1, 2, 4, 3, 2},
	YoniMongoose: {0, 2, 2, 3, 0, 1, 2, 1, 2, 2, 2, 2, 3, 4, 2},
	YoniLion:     {0, 1, 0, 1, 2, 1, 1, 2, 1, 2, 1, 2, 2, 2, 4},
}

var nakshatraGanas = [28]Gana{
	Ashwini:          GanaDeva,
	Bharani:          GanaManushya,
	Krittika:         GanaRakshasa,
	Rohini:           GanaManushya,
	Mrigashira:       GanaDeva,
	Ardra:            GanaManushya,
	Punarvasu:        GanaDeva,
	Pushya:           GanaDeva,
	Ashlesha:         GanaRakshasa,
	Magha:            GanaRakshasa,
	PurvaPhalguni:    GanaManushya,
	UttaraPhalguni:   GanaManushya,
	Hasta:            GanaDeva,
	Chitra:           GanaRakshasa,
	Swati:            GanaDeva,
	Vishakha:         GanaRakshasa,
	Anuradha:         GanaDeva,
	Jyeshtha:         GanaRakshasa,
	Mula:             GanaRakshasa,
	PurvaAshadha:     GanaManushya,
	UttaraAshadha:    GanaManushya,
	Shravana:         GanaDeva,
	Dhanishta:        GanaRakshasa,
	Shatabhisha:      GanaRakshasa,
	PurvaBhadrapada:  GanaManushya,
	UttaraBhadrapada: GanaManushya,
	Revati:           GanaDeva,
}

// ganaScores is symmetric: same temperament 6, adjacent temperaments score
// higher than the Deva/Rakshasa poles.
var ganaScores = [4][4]int{
	GanaDeva:     {GanaDeva: 6, GanaManushya: 5, GanaRakshasa: 1},
	GanaManushya: {GanaDeva: 5, GanaManushya: 6, GanaRakshasa: 3},
	GanaRakshasa: {GanaDeva: 1, GanaManushya: 3, GanaRakshasa: 6},
}

var nakshatraNadis = [28]Nadi{
	Ashwini:          NadiAdi,
	Bharani:          NadiMadhya,
	Krittika:         NadiAntya,
	Rohini:           NadiAntya,
	Mrigashira:       NadiMadhya,
	Ardra:            NadiAdi,
	Punarvasu:        NadiAdi,
	Pushya:           NadiMadhya,
	Ashlesha:         NadiAntya,
	Magha:            NadiAntya,
	PurvaPhalguni:    NadiMadhya,
	UttaraPhalguni:   NadiAdi,
	Hasta:            NadiAdi,
	Chitra:           NadiMadhya,
	Swati:            NadiAntya,
	Vishakha:         NadiAntya,
	Anuradha:         NadiMadhya,
	Jyeshtha:         NadiAdi,
	Mula:             NadiAdi,
	PurvaAshadha:     NadiMadhya,
	UttaraAshadha:    NadiAntya,
	Shravana:         NadiAntya,
	Dhanishta:        NadiMadhya,
	Shatabhisha:      NadiAdi,
	PurvaBhadrapada:  NadiAdi,
	UttaraBhadrapada: NadiMadhya,
	Revati:           NadiAntya,
}

var signLords = [13]Planet{
	Aries:       PlanetMars,
	Taurus:      PlanetVenus,
	Gemini:      PlanetMercury,
	Cancer:      PlanetMoon,
	Leo:         PlanetSun,
	Virgo:       PlanetMercury,
	Libra:       PlanetVenus,
	Scorpio:     PlanetMars,
	Sagittarius: PlanetJupiter,
	Capricorn:   PlanetSaturn,
	Aquarius:    PlanetSaturn,
	Pisces:      PlanetJupiter,
}

// Relation is how one sign lord regards another.
type Relation int

const (
	RelationNone Relation = iota
	RelationFriend
	RelationNeutral
	RelationEnemy
)

// planetRelations holds the classical natural friendships. The view is
// directional: planetRelations[a][b] is how a regards b.
var planetRelations = [8][8]Relation{
	PlanetSun: {
		PlanetMoon: RelationFriend, PlanetMars: RelationFriend, PlanetJupiter: RelationFriend,
		PlanetMercury: RelationNeutral,
		PlanetVenus:   RelationEnemy, PlanetSaturn: RelationEnemy,
	},
	PlanetMoon: {
		PlanetSun: RelationFriend, PlanetMercury: RelationFriend,
		PlanetMars: RelationNeutral, PlanetJupiter: RelationNeutral, PlanetVenus: RelationNeutral, PlanetSaturn: RelationNeutral,
	},
	PlanetMars: {
		PlanetSun: RelationFriend, PlanetMoon: RelationFriend, PlanetJupiter: RelationFriend,
		PlanetVenus: RelationNeutral, PlanetSaturn: RelationNeutral,
		PlanetMercury: RelationEnemy,
	},
	PlanetMercury: {
		PlanetSun: RelationFriend, PlanetVenus: RelationFriend,
		PlanetMars: RelationNeutral, PlanetJupiter: RelationNeutral, PlanetSaturn: RelationNeutral,
		PlanetMoon: RelationEnemy,
	},
	PlanetJupiter: {
		PlanetSun: RelationFriend, PlanetMoon: RelationFriend, PlanetMars: RelationFriend,
		PlanetSaturn:  RelationNeutral,
		PlanetMercury: RelationEnemy, PlanetVenus: RelationEnemy,
	},
	PlanetVenus: {
		PlanetMercury: RelationFriend, PlanetSaturn: RelationFriend,
		PlanetMars: RelationNeutral, PlanetJupiter: RelationNeutral,
		PlanetSun:  RelationEnemy, PlanetMoon: RelationEnemy,
	},
	PlanetSaturn: {
		PlanetMercury: RelationFriend, PlanetVenus: RelationFriend,
		PlanetJupiter: RelationNeutral,
		PlanetSun:     RelationEnemy, PlanetMoon: RelationEnemy, PlanetMars: RelationEnemy,
	},
}
