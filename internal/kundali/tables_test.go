package kundali

import "testing"

func TestNakshatraTablesAreExhaustive(t *testing.T) {
	t.Parallel()

	ganaCounts := make(map[Gana]int)
	nadiCounts := make(map[Nadi]int)

	for _, n := range Nakshatras {
		if got := nakshatraYonis[n]; got == YoniUnknown {
			t.Fatalf("nakshatra %s has no yoni", n)
		}
		gana := nakshatraGanas[n]
		if gana == GanaUnknown {
			t.Fatalf("nakshatra %s has no gana", n)
		}
		nadi := nakshatraNadis[n]
		if nadi == NadiUnknown {
			t.Fatalf("nakshatra %s has no nadi", n)
		}
		ganaCounts[gana]++
		nadiCounts[nadi]++
	}

	for gana := GanaDeva; gana <= GanaRakshasa; gana++ {
		if ganaCounts[gana] != 9 {
			t.Fatalf("expected 9 nakshatras in gana %s, got %d", gana, ganaCounts[gana])
		}
	}
	for nadi := NadiAdi; nadi <= NadiAntya; nadi++ {
		if nadiCounts[nadi] != 9 {
			t.Fatalf("expected 9 nakshatras in nadi %s, got %d", nadi, nadiCounts[nadi])
		}
	}
}

func TestSignTablesAreExhaustive(t *testing.T) {
	t.Parallel()

	for _, s := range Signs {
		if signVarnas[s] == VarnaUnknown {
			t.Fatalf("sign %s has no varna", s)
		}
		if signVashyaGroups[s] == VashyaUnknown {
			t.Fatalf("sign %s has no vashya group", s)
		}
		if signLords[s] == PlanetUnknown {
			t.Fatalf("sign %s has no lord", s)
		}
		for _, amenable := range vashyaSigns[s] {
			if amenable < Aries || amenable > Pisces {
				t.Fatalf("sign %s has out-of-range amenable sign %d", s, amenable)
			}
			if amenable == s {
				t.Fatalf("sign %s lists itself as amenable", s)
			}
		}
	}
}

func TestYoniScoresSymmetricWithDiagonalMax(t *testing.T) {
	t.Parallel()

	for a := YoniHorse; a <= YoniLion; a++ {
		if yoniScores[a][a] != MaxYoni {
			t.Fatalf("yoni %s self-score is %d, want %d", a, yoniScores[a][a], MaxYoni)
		}
		for b := YoniHorse; b <= YoniLion; b++ {
			ab, ba := yoniScores[a][b], yoniScores[b][a]
			if ab != ba {
				t.Fatalf("yoni scores not symmetric for %s/%s: %d vs %d", a, b, ab, ba)
			}
			if ab < 0 || ab > MaxYoni {
				t.Fatalf("yoni score for %s/%s out of range: %d", a, b, ab)
			}
		}
	}
}

func TestYoniSwornEnemyPairsScoreZero(t *testing.T) {
	t.Parallel()

	enemies := []struct{ a, b Yoni }{
		{YoniHorse, YoniBuffalo},
		{YoniElephant, YoniLion},
		{YoniSheep, YoniMonkey},
		{YoniSerpent, YoniMongoose},
		{YoniDog, YoniDeer},
		{YoniCat, YoniRat},
		{YoniCow, YoniTiger},
	}

	for _, pair := range enemies {
		if got := yoniScores[pair.a][pair.b]; got != 0 {
			t.Fatalf("expected sworn enemies %s/%s to score 0, got %d", pair.a, pair.b, got)
		}
	}
}

func TestGanaScoresMatchCodomain(t *testing.T) {
	t.Parallel()

	allowed := map[int]bool{1: true, 3: true, 5: true, 6: true}

	for a := GanaDeva; a <= GanaRakshasa; a++ {
		for b := GanaDeva; b <= GanaRakshasa; b++ {
			got := ganaScores[a][b]
			if !allowed[got] {
				t.Fatalf("gana score for %s/%s outside codomain: %d", a, b, got)
			}
			if got != ganaScores[b][a] {
				t.Fatalf("gana scores not symmetric for %s/%s", a, b)
			}
			if a == b && got != MaxGana {
				t.Fatalf("same gana %s should score %d, got %d", a, MaxGana, got)
			}
		}
	}
}

func TestPlanetRelationsCoverAllPairs(t *testing.T) {
	t.Parallel()

	for a := PlanetSun; a <= PlanetSaturn; a++ {
		for b := PlanetSun; b <= PlanetSaturn; b++ {
			if a == b {
				continue
			}
			if planetRelations[a][b] == RelationNone {
				t.Fatalf("no relation declared from %s to %s", a, b)
			}
		}
	}
}
