package kundali

import "testing"

func TestScoreExactBreakdown(t *testing.T) {
	t.Parallel()

	a := Chart{ID: "a", MoonSign: Leo, Nakshatra: Magha}
	b := Chart{ID: "b", MoonSign: Pisces, Nakshatra: Revati}

	got := Score(a, b)

	want := Breakdown{
		Varna:        0,
		Vashya:       0,
		Tara:         3,
		TaraType:     TaraSampat,
		Yoni:         2,
		GrahaMaitri:  5,
		Gana:         1,
		Bhakoot:      0,
		BhakootDosha: BhakootShadashtaka,
		Nadi:         0,
		NadiDosha:    true,
		Total:        11,
	}

	if got != want {
		t.Fatalf("unexpected breakdown:\n got %+v\nwant %+v", got, want)
	}
}

func TestScoreSelfPairing(t *testing.T) {
	t.Parallel()

	for _, n := range Nakshatras {
		for _, s := range Signs {
			c := Chart{ID: "self", MoonSign: s, Nakshatra: n}
			bd := Score(c, c)

			if bd.Nadi != 0 || !bd.NadiDosha {
				t.Fatalf("self pair %s/%s: expected nadi 0 with dosha, got %d (dosha %v)", s, n, bd.Nadi, bd.NadiDosha)
			}
			if bd.Yoni != MaxYoni {
				t.Fatalf("self pair %s/%s: expected yoni %d, got %d", s, n, MaxYoni, bd.Yoni)
			}
			if bd.TaraType != TaraJanma || bd.Tara != 0 {
				t.Fatalf("self pair %s/%s: expected janma tara scoring 0, got %s scoring %d", s, n, bd.TaraType, bd.Tara)
			}
			if bd.Varna != MaxVarna || bd.Vashya != MaxVashya {
				t.Fatalf("self pair %s/%s: expected full varna and vashya, got %d and %d", s, n, bd.Varna, bd.Vashya)
			}
			if bd.GrahaMaitri != MaxGrahaMaitri || bd.Gana != MaxGana || bd.Bhakoot != MaxBhakoot {
				t.Fatalf("self pair %s/%s: expected shared lord, gana, and first-house bhakoot maxima, got %+v", s, n, bd)
			}
			if bd.Total != 25 {
				t.Fatalf("self pair %s/%s: expected total 25, got %d", s, n, bd.Total)
			}
		}
	}
}

func TestScoreBoundsAndSymmetricFactors(t *testing.T) {
	t.Parallel()

	for _, na := range Nakshatras {
		for _, sa := range Signs {
			a := Chart{ID: "a", MoonSign: sa, Nakshatra: na}
			for _, nb := range Nakshatras {
				for _, sb := range Signs {
					b := Chart{ID: "b", MoonSign: sb, Nakshatra: nb}

					ab := Score(a, b)
					ba := Score(b, a)

					if ab.Total < 0 || ab.Total > MaxTotal {
						t.Fatalf("total out of range for %s/%s vs %s/%s: %d", sa, na, sb, nb, ab.Total)
					}
					sum := ab.Varna + ab.Vashya + ab.Tara + ab.Yoni + ab.GrahaMaitri + ab.Gana + ab.Bhakoot + ab.Nadi
					if ab.Total != sum {
						t.Fatalf("total %d does not match sub-score sum %d", ab.Total, sum)
					}

					if ab.Yoni != ba.Yoni {
						t.Fatalf("yoni not symmetric for %s vs %s", na, nb)
					}
					if ab.GrahaMaitri != ba.GrahaMaitri {
						t.Fatalf("graha maitri not symmetric for %s vs %s", sa, sb)
					}
					if ab.Gana != ba.Gana {
						t.Fatalf("gana not symmetric for %s vs %s", na, nb)
					}
					if ab.Bhakoot != ba.Bhakoot || ab.BhakootDosha != ba.BhakootDosha {
						t.Fatalf("bhakoot not symmetric for %s vs %s", sa, sb)
					}
					if ab.Nadi != ba.Nadi || ab.NadiDosha != ba.NadiDosha {
						t.Fatalf("nadi not symmetric for %s vs %s", na, nb)
					}
				}
			}
		}
	}
}

func TestTaraRemainders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a, b  Nakshatra
		tara  Tara
		score int
	}{
		{name: "janma on identical mansions", a: Ashwini, b: Ashwini, tara: TaraJanma, score: 0},
		{name: "sampat one step ahead", a: Bharani, b: Ashwini, tara: TaraSampat, score: 3},
		{name: "vipat two steps ahead", a: Krittika, b: Ashwini, tara: TaraVipat, score: 0},
		{name: "param maitra wraps backwards", a: Ashwini, b: Bharani, tara: TaraParamMaitra, score: 3},
		{name: "magha to revati wraps to sampat", a: Magha, b: Revati, tara: TaraSampat, score: 3},
		{name: "vadha six ahead", a: Pushya, b: Bharani, tara: TaraVadha, score: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, tara := taraScore(tt.a, tt.b)
			if tara != tt.tara || score != tt.score {
				t.Fatalf("taraScore(%s, %s) = %d/%s, want %d/%s", tt.a, tt.b, score, tara, tt.score, tt.tara)
			}
		})
	}
}

func TestBhakootDistancePatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a, b  Sign
		score int
		dosha BhakootDosha
	}{
		{name: "same sign", a: Aries, b: Aries, score: 7, dosha: BhakootNone},
		{name: "second house", a: Aries, b: Taurus, score: 0, dosha: BhakootDwirdwadasha},
		{name: "twelfth house", a: Taurus, b: Aries, score: 0, dosha: BhakootDwirdwadasha},
		{name: "sixth house", a: Aries, b: Virgo, score: 0, dosha: BhakootShadashtaka},
		{name: "eighth house", a: Virgo, b: Aries, score: 0, dosha: BhakootShadashtaka},
		{name: "fifth house clean", a: Aries, b: Leo, score: 7, dosha: BhakootNone},
		{name: "seventh house clean", a: Aries, b: Libra, score: 7, dosha: BhakootNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, dosha := bhakootScore(tt.a, tt.b)
			if score != tt.score || dosha != tt.dosha {
				t.Fatalf("bhakootScore(%s, %s) = %d/%s, want %d/%s", tt.a, tt.b, score, dosha, tt.score, tt.dosha)
			}
		})
	}
}

func TestVarnaAndVashyaAreDirectional(t *testing.T) {
	t.Parallel()

	kshatriya := Chart{MoonSign: Leo, Nakshatra: Magha}
	brahmin := Chart{MoonSign: Pisces, Nakshatra: Revati}

	if got := Score(kshatriya, brahmin).Varna; got != 0 {
		t.Fatalf("lower-ranked varna first: expected 0, got %d", got)
	}
	if got := Score(brahmin, kshatriya).Varna; got != MaxVarna {
		t.Fatalf("higher-ranked varna first: expected %d, got %d", MaxVarna, got)
	}

	leo := Chart{MoonSign: Leo, Nakshatra: Magha}
	libra := Chart{MoonSign: Libra, Nakshatra: Swati}

	if got := Score(leo, libra).Vashya; got != MaxVashya {
		t.Fatalf("libra is amenable to leo: expected %d, got %d", MaxVashya, got)
	}
	if got := Score(libra, leo).Vashya; got != 0 {
		t.Fatalf("leo is not amenable to libra: expected 0, got %d", got)
	}
}

func TestGrahaMaitriCombinations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a, b  Sign
		score int
	}{
		{name: "same lord", a: Aries, b: Scorpio, score: 5},
		{name: "mutual friends", a: Leo, b: Pisces, score: 5},
		{name: "mutual enemies", a: Leo, b: Taurus, score: 0},
		{name: "one-sided enemy", a: Cancer, b: Gemini, score: 1},
		{name: "friend and neutral", a: Aries, b: Cancer, score: 4},
		{name: "mutual neutrals", a: Taurus, b: Aries, score: 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := Chart{MoonSign: tt.a}
			b := Chart{MoonSign: tt.b}
			if got := Score(a, b).GrahaMaitri; got != tt.score {
				t.Fatalf("graha maitri for %s/%s = %d, want %d", tt.a, tt.b, got, tt.score)
			}
		})
	}
}

func TestNadiPairing(t *testing.T) {
	t.Parallel()

	sameNadi := Score(
		Chart{MoonSign: Aries, Nakshatra: Ashwini},
		Chart{MoonSign: Gemini, Nakshatra: Ardra},
	)
	if sameNadi.Nadi != 0 || !sameNadi.NadiDosha {
		t.Fatalf("shared adi nadi: expected 0 with dosha, got %d (dosha %v)", sameNadi.Nadi, sameNadi.NadiDosha)
	}

	differentNadi := Score(
		Chart{MoonSign: Aries, Nakshatra: Ashwini},
		Chart{MoonSign: Taurus, Nakshatra: Bharani},
	)
	if differentNadi.Nadi != MaxNadi || differentNadi.NadiDosha {
		t.Fatalf("different nadi: expected %d without dosha, got %d (dosha %v)", MaxNadi, differentNadi.Nadi, differentNadi.NadiDosha)
	}
}

func TestUnknownAttributesDegradeToZero(t *testing.T) {
	t.Parallel()

	bd := Score(Chart{}, Chart{MoonSign: Leo, Nakshatra: Magha})

	if bd.Total != 0 {
		t.Fatalf("expected zero total against an empty chart, got %d", bd.Total)
	}
	if bd.NadiDosha || bd.BhakootDosha != BhakootNone {
		t.Fatalf("expected no doshas against an empty chart, got %+v", bd)
	}
}
