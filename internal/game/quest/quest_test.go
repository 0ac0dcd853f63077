package quest

import "testing"

func TestLifecycle(t *testing.T) {
	l := NewLog()
	if l.Accept(SlayMonsters) {
		t.Fatal("accepted a quest that was never offered")
	}
	if !l.Offer(SlayMonsters) || l.Offer(SlayMonsters) {
		t.Fatal("offer should change state exactly once")
	}
	if !l.Accept(SlayMonsters) {
		t.Fatal("accept failed")
	}

	if done := l.Update(Counters{Kills: 9}); len(done) != 0 {
		t.Fatalf("completed early: %+v", done)
	}
	if got := l.Get(SlayMonsters).Progress; got != 9 {
		t.Errorf("progress = %d, want 9", got)
	}

	done := l.Update(Counters{Kills: 12})
	if len(done) != 1 || done[0].ID != SlayMonsters || done[0].Progress != 10 {
		t.Fatalf("done = %+v", done)
	}
	if again := l.Update(Counters{Kills: 20}); len(again) != 0 {
		t.Errorf("quest completed twice: %+v", again)
	}
	if l.Get(SlayMonsters).Status != Complete {
		t.Errorf("status = %v", l.Get(SlayMonsters).Status)
	}
}

func TestOfferedQuestDoesNotProgress(t *testing.T) {
	l := NewLog()
	l.Offer(TreasureHunter)
	if done := l.Update(Counters{Chests: 5}); len(done) != 0 {
		t.Errorf("offered quest completed: %+v", done)
	}
}

func TestAllListsKnownQuests(t *testing.T) {
	l := NewLog()
	if len(l.All()) != 0 {
		t.Fatal("fresh log should list nothing")
	}
	l.Offer(DiscoverBiomes)
	l.Offer(TreasureHunter)
	all := l.All()
	if len(all) != 2 || all[0].ID != DiscoverBiomes || all[1].ID != TreasureHunter {
		t.Errorf("All = %+v", all)
	}
}

func TestUnknownQuestPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewLog().Offer("find_the_cake")
}

func TestStatusTextRoundTrip(t *testing.T) {
	for _, s := range []Status{Unknown, Offered, Active, Complete} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s): %v", s, err)
		}
		var got Status
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if got != s {
			t.Errorf("round trip of %s gave %s", s, got)
		}
	}
	var s Status
	if err := s.UnmarshalText([]byte("abandoned")); err == nil {
		t.Error("expected error for unknown status")
	}
}
