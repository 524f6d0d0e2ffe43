package elimination

import (
	"testing"

	"github.com/google/uuid"

	"laptudirm.com/x/ruin/pkg/ruin/player"
)

func names(players []*player.Player) []string {
	var list []string
	for _, p := range players {
		list = append(list, p.Name)
	}

	return list
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestCheckAndRemove(t *testing.T) {
	tests := []struct {
		name      string
		balances  []int
		bye       bool
		threshold int

		wantBust bool
		want     []string
	}{
		{"nobody bust", []int{3, 4, 5}, false, 0, false, []string{"p0", "p1", "p2"}},
		{"placeholder only", []int{3, 4, 5}, true, 0, false, []string{"p0", "p1", "p2", "BYE"}},
		{"single bust", []int{0, 4, 5}, false, 0, false, []string{"p0", "p1", "p2"}},
		{"single bust with placeholder", []int{0, 4, 5}, true, 0, false, []string{"p0", "p1", "p2", "BYE"}},
		{"two bust", []int{0, 4, 0, 6}, false, 0, true, []string{"p1", "p3"}},
		{"two bust with placeholder", []int{0, 9, 0}, true, 0, true, []string{"p1"}},
		{"three bust", []int{0, 0, 0, 12, 3}, true, 0, true, []string{"p3", "p4"}},
		{"single bust, threshold one", []int{0, 4, 5}, true, 1, true, []string{"p1", "p2"}},
		{"two bust, threshold three", []int{0, 4, 0, 6}, false, 3, false, []string{"p0", "p1", "p2", "p3"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var players []*player.Player
			for i, balance := range test.balances {
				players = append(players, player.New("p"+string(rune('0'+i)), balance))
			}
			if test.bye {
				players = append(players, player.Bye())
			}

			before := names(players)
			monitor := Monitor{Threshold: test.threshold}

			remaining, bust := monitor.CheckAndRemove(players)
			if bust != test.wantBust {
				t.Errorf("bust = %v, want %v", bust, test.wantBust)
			}

			if got := names(remaining); !equal(got, test.want) {
				t.Errorf("remaining = %v, want %v", got, test.want)
			}

			if got := names(players); !equal(got, before) {
				t.Errorf("input set was modified: %v, was %v", got, before)
			}
		})
	}
}

func TestCheckDecision(t *testing.T) {
	a, b, c := player.New("a", 0), player.New("b", 0), player.New("c", 10)
	bye := player.Bye()

	decision := Monitor{}.Check([]*player.Player{a, b, c, bye})
	if !decision.Bust || decision.Busted != 2 {
		t.Fatalf("decision = %+v, want bust with 2 busted", decision)
	}

	if len(decision.Remove) != 3 ||
		decision.Remove[0] != a.ID ||
		decision.Remove[1] != b.ID ||
		decision.Remove[2] != bye.ID {
		t.Fatalf("decision removes %v, want [a b BYE]", decision.Remove)
	}

	decision = Monitor{}.Check([]*player.Player{a, c, bye})
	if decision.Bust || decision.Busted != 1 || len(decision.Remove) != 0 {
		t.Fatalf("decision = %+v, want no bust with 1 busted", decision)
	}
}

func TestApplyWithoutBust(t *testing.T) {
	players := []*player.Player{player.New("a", 0), player.New("b", 5)}
	if got := Apply(players, Decision{}); len(got) != 2 {
		t.Fatalf("Apply(no bust) removed players: %v", got)
	}
}

func TestApplyTwice(t *testing.T) {
	players := []*player.Player{player.New("a", 0), player.New("b", 0), player.New("c", 10), player.Bye()}

	decision := Monitor{}.Check(players)
	once := Apply(players, decision)
	if got := names(once); !equal(got, []string{"c"}) {
		t.Fatalf("first Apply() = %v, want [c]", got)
	}

	twice := Apply(once, decision)
	if got := names(twice); !equal(got, []string{"c"}) {
		t.Fatalf("second Apply() = %v, want [c]", got)
	}
}

func TestApplyForeignDecision(t *testing.T) {
	players := []*player.Player{player.New("a", 1)}
	decision := Decision{Bust: true, Remove: []uuid.UUID{uuid.New(), uuid.New()}}

	if got := names(Apply(players, decision)); !equal(got, []string{"a"}) {
		t.Fatalf("Apply(foreign decision) = %v, want [a]", got)
	}
}
