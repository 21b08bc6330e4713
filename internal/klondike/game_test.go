package klondike

import "testing"

// testGame returns an empty session forced into the Playing state so
// fixtures can lay out piles by hand. Conservation is only asserted at
// Deal, so partial fixtures are fine.
func testGame(t *testing.T, rules Rules) *Game {
	t.Helper()
	g, err := New(rules)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.state = StatePlaying
	return g
}

// setPile replaces the contents of a pile, bottom card first.
func setPile(g *Game, id PileID, cards ...Card) {
	p := g.pile(id)
	p.cards = append(p.cards[:0], cards...)
}

// snapshotPiles captures every pile's cards for later comparison.
func snapshotPiles(g *Game) [][]Card {
	out := make([][]Card, NumPiles)
	for id := PileID(0); id < NumPiles; id++ {
		out[id] = g.pile(id).Cards()
	}
	return out
}

// samePiles compares two snapshots bit for bit, orientation included.
func samePiles(a, b [][]Card) bool {
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// collect subscribes a recorder and returns the captured event slice.
func collect(g *Game) *[]Event {
	var events []Event
	g.Subscribe(func(ev Event) { events = append(events, ev) })
	return &events
}

func TestDealLayout(t *testing.T) {
	g, err := NewGame(DefaultRules(), 42)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if g.State() != StatePlaying {
		t.Fatalf("state after deal = %v, want playing", g.State())
	}

	for col := 0; col < NumTableaus; col++ {
		p := g.Pile(TableauID(col))
		if p.Len() != col+1 {
			t.Errorf("tableau %d holds %d cards, want %d", col+1, p.Len(), col+1)
		}
		for i := 0; i < p.Len(); i++ {
			wantUp := i == p.Len()-1
			if p.At(i).FaceUp != wantUp {
				t.Errorf("tableau %d card %d face-up = %v, want %v", col+1, i, p.At(i).FaceUp, wantUp)
			}
		}
	}
	if got := g.Pile(PileStock).Len(); got != 24 {
		t.Errorf("stock holds %d cards, want 24", got)
	}
	if !g.Pile(PileWaste).Empty() {
		t.Error("waste should start empty")
	}
	for i := 0; i < NumFoundations; i++ {
		if !g.Pile(FoundationID(i)).Empty() {
			t.Errorf("foundation %d should start empty", i+1)
		}
	}
}

func TestDealDeterministic(t *testing.T) {
	g1, _ := NewGame(DefaultRules(), 12345)
	g2, _ := NewGame(DefaultRules(), 12345)
	if !samePiles(snapshotPiles(g1), snapshotPiles(g2)) {
		t.Error("same seed must produce the same deal")
	}

	g3, _ := NewGame(DefaultRules(), 54321)
	if samePiles(snapshotPiles(g1), snapshotPiles(g3)) {
		t.Error("different seeds produced the same deal")
	}
}

func TestTryMoveCommitsAndAutoFlips(t *testing.T) {
	g := testGame(t, DefaultRules())
	setPile(g, TableauID(0), down(King, Clubs), up(7, Diamonds), up(6, Spades))
	setPile(g, TableauID(1), up(8, Clubs))
	events := collect(g)

	if v := g.TryMove(TableauID(0), TableauID(1), 2); v != Legal {
		t.Fatalf("TryMove = %v, want legal", v)
	}

	if got := g.Pile(TableauID(1)).Len(); got != 3 {
		t.Errorf("destination holds %d cards, want 3", got)
	}
	top, _ := g.Pile(TableauID(0)).Top()
	if !top.FaceUp || top.Rank != King {
		t.Errorf("source top = %v face-up=%v, want K♣ flipped up", top, top.FaceUp)
	}

	if len(*events) != 1 {
		t.Fatalf("got %d events, want 1", len(*events))
	}
	sc, ok := (*events)[0].(StateChanged)
	if !ok {
		t.Fatalf("event = %T, want StateChanged", (*events)[0])
	}
	if len(sc.Moved) != 2 || len(sc.Flipped) != 1 {
		t.Errorf("StateChanged moved=%d flipped=%d, want 2 and 1", len(sc.Moved), len(sc.Flipped))
	}
}

func TestTryMoveRejectedLeavesStateUntouched(t *testing.T) {
	g := testGame(t, DefaultRules())
	setPile(g, TableauID(0), up(7, Diamonds))
	setPile(g, TableauID(1), up(9, Clubs))
	events := collect(g)
	before := snapshotPiles(g)

	if v := g.TryMove(TableauID(0), TableauID(1), 1); v != IllegalDestination {
		t.Fatalf("TryMove = %v, want illegal destination", v)
	}
	if !samePiles(before, snapshotPiles(g)) {
		t.Error("rejected move mutated state")
	}
	if len(*events) != 1 {
		t.Fatalf("got %d events, want 1", len(*events))
	}
	if rej, ok := (*events)[0].(MoveRejected); !ok || rej.Reason != IllegalDestination {
		t.Errorf("event = %#v, want MoveRejected(illegal destination)", (*events)[0])
	}
}

func TestDrawStock(t *testing.T) {
	g := testGame(t, DefaultRules())
	setPile(g, PileStock, down(5, Hearts), down(9, Clubs))

	g.DrawStock()
	if got := g.Pile(PileStock).Len(); got != 1 {
		t.Errorf("stock holds %d cards after draw, want 1", got)
	}
	top, _ := g.Pile(PileWaste).Top()
	if !top.FaceUp || top.Rank != 9 || top.Suit != Clubs {
		t.Errorf("waste top = %v face-up=%v, want 9♣ face-up", top, top.FaceUp)
	}
}

func TestDrawThree(t *testing.T) {
	rules := DefaultRules()
	rules.DrawCount = 3
	g := testGame(t, rules)
	setPile(g, PileStock, down(2, Hearts), down(3, Hearts), down(4, Hearts), down(5, Hearts))

	g.DrawStock()
	if got := g.Pile(PileWaste).Len(); got != 3 {
		t.Fatalf("waste holds %d cards, want 3", got)
	}
	// Cards pop one at a time, so the former stock top ends up lowest.
	top, _ := g.Pile(PileWaste).Top()
	if top.Rank != 3 {
		t.Errorf("waste top = %v, want 3♥", top)
	}

	// A short stock yields what is left.
	g.DrawStock()
	if got := g.Pile(PileWaste).Len(); got != 4 {
		t.Errorf("waste holds %d cards, want 4", got)
	}
}

func TestRecycleWasteIntoStock(t *testing.T) {
	// Draw on an empty stock recycles the waste reversed
	// and face-down, leaving the waste empty.
	g := testGame(t, DefaultRules())
	setPile(g, PileWaste, up(2, Hearts), up(7, Spades), up(Jack, Diamonds))

	g.DrawStock()

	if !g.Pile(PileWaste).Empty() {
		t.Error("waste should be empty after recycle")
	}
	stock := g.Pile(PileStock)
	if stock.Len() != 3 {
		t.Fatalf("stock holds %d cards, want 3", stock.Len())
	}
	// Reversed: the old waste top is now the stock bottom.
	want := []Card{down(Jack, Diamonds), down(7, Spades), down(2, Hearts)}
	for i, c := range stock.Cards() {
		if c != want[i] {
			t.Errorf("stock[%d] = %v face-up=%v, want %v face-down", i, c, c.FaceUp, want[i])
		}
	}

	// The next draw turns over the first card originally drawn.
	g.DrawStock()
	top, _ := g.Pile(PileWaste).Top()
	if top.Rank != 2 || top.Suit != Hearts {
		t.Errorf("redraw after recycle = %v, want 2♥", top)
	}
}

func TestDrawBothEmpty(t *testing.T) {
	g := testGame(t, DefaultRules())
	events := collect(g)

	g.DrawStock()
	if len(*events) != 1 {
		t.Fatalf("got %d events, want 1", len(*events))
	}
	if nt, ok := (*events)[0].(NothingToDo); !ok || nt.Op != "draw" {
		t.Errorf("event = %#v, want NothingToDo(draw)", (*events)[0])
	}
}

func TestUndoInverseLaw(t *testing.T) {
	// Any sequence of legal mutations unwinds to the exact pre-move
	// state, orientations included.
	g, _ := NewGame(DefaultRules(), 977)
	before := snapshotPiles(g)

	ops := 0
	for i := 0; i < 30; i++ {
		if m := g.findHint(); m != nil && m.Src != PileStock {
			if g.TryMove(m.Src, m.Dst, m.Count) == Legal {
				ops++
				continue
			}
		}
		g.DrawStock()
		ops++
	}

	for i := 0; i < ops; i++ {
		if !g.CanUndo() {
			t.Fatalf("history exhausted after %d of %d undos", i, ops)
		}
		g.Undo()
	}
	if !samePiles(before, snapshotPiles(g)) {
		t.Error("full unwind did not restore the initial state")
	}
	if g.CanUndo() {
		t.Error("history should be empty after full unwind")
	}
}

func TestUndoAutoFlip(t *testing.T) {
	g := testGame(t, DefaultRules())
	setPile(g, TableauID(0), down(4, Hearts), up(8, Spades))
	setPile(g, TableauID(1), up(9, Diamonds))
	before := snapshotPiles(g)

	g.TryMove(TableauID(0), TableauID(1), 1)
	top, _ := g.Pile(TableauID(0)).Top()
	if !top.FaceUp {
		t.Fatal("expected auto-flip of exposed card")
	}

	g.Undo()
	if !samePiles(before, snapshotPiles(g)) {
		t.Error("undo did not reverse the auto-flip")
	}
}

func TestUndoRecycle(t *testing.T) {
	g := testGame(t, DefaultRules())
	setPile(g, PileWaste, up(2, Hearts), up(7, Spades), up(Jack, Diamonds))
	before := snapshotPiles(g)

	g.DrawStock() // recycles
	g.Undo()
	if !samePiles(before, snapshotPiles(g)) {
		t.Error("undo did not reverse the recycle")
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	g := testGame(t, DefaultRules())
	events := collect(g)

	g.Undo()
	if len(*events) != 1 {
		t.Fatalf("got %d events, want 1", len(*events))
	}
	if nt, ok := (*events)[0].(NothingToDo); !ok || nt.Op != "undo" {
		t.Errorf("event = %#v, want NothingToDo(undo)", (*events)[0])
	}
}

func TestWinDetection(t *testing.T) {
	g := testGame(t, DefaultRules())

	// Fill three foundations completely and the fourth up to the queen.
	suits := []Suit{Clubs, Diamonds, Hearts}
	for i, s := range suits {
		var cards []Card
		for r := Ace; r <= King; r++ {
			cards = append(cards, up(r, s))
		}
		setPile(g, FoundationID(i), cards...)
	}
	var spades []Card
	for r := Ace; r <= Queen; r++ {
		spades = append(spades, up(r, Spades))
	}
	setPile(g, FoundationID(3), spades...)
	setPile(g, PileWaste, up(King, Spades))

	if g.won() {
		t.Fatal("51 foundation cards must not count as a win")
	}

	events := collect(g)
	if v := g.TryMove(PileWaste, FoundationID(3), 1); v != Legal {
		t.Fatalf("final move = %v, want legal", v)
	}
	if g.State() != StateWon {
		t.Errorf("state = %v, want won", g.State())
	}

	sawWin := false
	for _, ev := range *events {
		if _, ok := ev.(GameWon); ok {
			sawWin = true
		}
	}
	if !sawWin {
		t.Error("no GameWon event emitted")
	}

	// Won is terminal: further intents do not mutate.
	before := snapshotPiles(g)
	g.DrawStock()
	g.Undo()
	if v := g.TryMove(FoundationID(3), TableauID(0), 1); v == Legal {
		t.Error("moves must be rejected after the win")
	}
	if !samePiles(before, snapshotPiles(g)) {
		t.Error("terminal state mutated")
	}
}

func TestInvariantsAcrossPlay(t *testing.T) {
	// Drive a real deal with hints and draws, checking conservation and
	// tableau contiguity after every committed operation.
	g, _ := NewGame(DefaultRules(), 31337)

	for i := 0; i < 200 && g.State() == StatePlaying; i++ {
		if m := g.findHint(); m != nil && m.Src != PileStock {
			g.TryMove(m.Src, m.Dst, m.Count)
		} else {
			if g.Pile(PileStock).Empty() && g.Pile(PileWaste).Empty() {
				break
			}
			g.DrawStock()
		}

		g.assertConservation()
		for col := 0; col < NumTableaus; col++ {
			if !g.pile(TableauID(col)).faceDownContiguous() {
				t.Fatalf("tableau %d lost face-down contiguity at step %d", col+1, i)
			}
		}
	}
}

func TestDealRejectsBadRules(t *testing.T) {
	bad := Rules{DrawCount: 2, EmptyTableau: EmptyTableauKing}
	if _, err := New(bad); err == nil {
		t.Error("draw count 2 should be rejected")
	}
	bad = Rules{DrawCount: 1, EmptyTableau: "jack"}
	if _, err := New(bad); err == nil {
		t.Error("unknown empty-tableau rule should be rejected")
	}
}
