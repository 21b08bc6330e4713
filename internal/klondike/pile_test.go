package klondike

import "testing"

// up and down are card constructors for fixtures.
func up(r Rank, s Suit) Card   { return Card{Rank: r, Suit: s, FaceUp: true} }
func down(r Rank, s Suit) Card { return Card{Rank: r, Suit: s, FaceUp: false} }

func TestPileIDLayout(t *testing.T) {
	if PileStock.Role() != RoleStock || PileWaste.Role() != RoleWaste {
		t.Fatal("stock/waste ids mislabeled")
	}
	for i := 0; i < NumFoundations; i++ {
		if FoundationID(i).Role() != RoleFoundation {
			t.Errorf("foundation %d has role %v", i, FoundationID(i).Role())
		}
	}
	for i := 0; i < NumTableaus; i++ {
		if TableauID(i).Role() != RoleTableau {
			t.Errorf("tableau %d has role %v", i, TableauID(i).Role())
		}
	}
	if got := TableauID(6); int(got) != NumPiles-1 {
		t.Errorf("last tableau id = %d, want %d", got, NumPiles-1)
	}
}

func TestPileIDValid(t *testing.T) {
	if PileID(-1).Valid() || PileID(NumPiles).Valid() {
		t.Error("out-of-range ids should be invalid")
	}
	for id := PileID(0); id < NumPiles; id++ {
		if !id.Valid() {
			t.Errorf("id %d should be valid", id)
		}
	}
}

func TestTopOnEmptyPile(t *testing.T) {
	p := newPile(PileWaste)
	if _, ok := p.Top(); ok {
		t.Error("empty pile should report no top card")
	}
}

func TestRemoveTopPreservesOrder(t *testing.T) {
	p := newPile(TableauID(0))
	p.appendCards([]Card{up(9, Hearts), up(8, Spades), up(7, Diamonds)})

	got := p.removeTop(2)
	if len(got) != 2 || got[0].Rank != 8 || got[1].Rank != 7 {
		t.Fatalf("removeTop(2) = %v, want [8♠ 7♦]", got)
	}
	if top, _ := p.Top(); top.Rank != 9 {
		t.Errorf("remaining top = %v, want 9♥", top)
	}
}

func TestRemoveTopTooManyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("removing more cards than held should panic")
		}
	}()
	p := newPile(TableauID(0))
	p.appendCards([]Card{up(5, Clubs)})
	p.removeTop(2)
}

func TestExposedRun(t *testing.T) {
	p := newPile(TableauID(0))
	p.appendCards([]Card{
		down(King, Clubs),
		up(9, Hearts),
		up(8, Spades),
		up(7, Diamonds),
		up(6, Spades),
	})
	// 9♥-8♠-7♦-6♠ alternates color all the way down from the top.
	if got := p.ExposedRun(); got != 4 {
		t.Fatalf("exposed run = %d, want 4", got)
	}

	// A same-color pair cuts the run.
	p = newPile(TableauID(1))
	p.appendCards([]Card{up(8, Diamonds), up(7, Hearts), up(6, Spades)})
	if got := p.ExposedRun(); got != 2 {
		t.Errorf("exposed run = %d, want 2 (8♦-7♥ same color)", got)
	}

	// A rank gap cuts the run.
	p = newPile(TableauID(2))
	p.appendCards([]Card{up(9, Clubs), up(6, Hearts), up(5, Spades)})
	if got := p.ExposedRun(); got != 2 {
		t.Errorf("exposed run = %d, want 2 (9 to 6 is a gap)", got)
	}

	// Face-down cards never join a run.
	p = newPile(TableauID(3))
	p.appendCards([]Card{down(8, Clubs), up(7, Hearts)})
	if got := p.ExposedRun(); got != 1 {
		t.Errorf("exposed run = %d, want 1", got)
	}
}

func TestExposedRunNonTableau(t *testing.T) {
	p := newPile(PileWaste)
	p.appendCards([]Card{up(5, Hearts), up(4, Spades), up(3, Hearts)})
	if got := p.ExposedRun(); got != 1 {
		t.Errorf("waste exposed run = %d, want 1 (only top card movable)", got)
	}

	p = newPile(PileStock)
	p.appendCards([]Card{down(5, Hearts)})
	if got := p.ExposedRun(); got != 0 {
		t.Errorf("stock exposed run = %d, want 0", got)
	}
}

func TestFaceDownContiguous(t *testing.T) {
	p := newPile(TableauID(0))
	p.appendCards([]Card{down(King, Clubs), down(Queen, Hearts), up(Jack, Spades)})
	if !p.faceDownContiguous() {
		t.Error("face-down prefix below face-up top should be contiguous")
	}

	p = newPile(TableauID(1))
	p.appendCards([]Card{up(King, Clubs), down(Queen, Hearts)})
	if p.faceDownContiguous() {
		t.Error("face-down above face-up should be flagged")
	}
}

func TestCardsReturnsCopy(t *testing.T) {
	p := newPile(TableauID(0))
	p.appendCards([]Card{up(5, Hearts)})

	snapshot := p.Cards()
	snapshot[0].Rank = King
	if top, _ := p.Top(); top.Rank != 5 {
		t.Error("mutating the snapshot must not touch the pile")
	}
}
