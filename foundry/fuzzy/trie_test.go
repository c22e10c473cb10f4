package fuzzy

import "testing"

func TestTrie_ConcreteScenario(t *testing.T) {
	trie := NewTrie("kitten", "sitting", "kitchen")

	match, distance, ok := trie.FindOne("kittin", 2)
	if !ok || match != "kitten" || distance != 1 {
		t.Errorf("got (%q, %d, %v), want (%q, %d, true)", match, distance, ok, "kitten", 1)
	}
}

func TestTrie_InsertGetContains(t *testing.T) {
	trie := NewTrie()
	trie.Insert("alpha")
	trie.Insert("beta")

	if !trie.Contains("alpha") {
		t.Error("expected trie to contain alpha")
	}
	if v, ok := trie.Get("beta"); !ok || v != "beta" {
		t.Errorf("Get(beta) = (%q, %v), want (beta, true)", v, ok)
	}
	if trie.Contains("gamma") {
		t.Error("did not expect trie to contain gamma")
	}
}

func TestTrie_EveryMemberFindsItselfAtZeroBudget(t *testing.T) {
	members := []string{"kitten", "sitting", "kitchen", "mitten", ""}
	trie := NewTrie(members...)

	for _, s := range members {
		if !trie.Contains(s) {
			t.Errorf("Contains(%q) = false, want true", s)
		}
		match, distance, ok := trie.FindOne(s, 0)
		if !ok || match != s || distance != 0 {
			t.Errorf("FindOne(%q, 0) = (%q, %d, %v), want (%q, 0, true)", s, match, distance, ok, s)
		}
	}
}

func TestTrie_FindOne_ReturnsClosestWithinBudget(t *testing.T) {
	trie := NewTrie("kitten", "sitting", "kitchen", "mitten", "bitten")

	match, distance, ok := trie.FindOne("kittin", Unbounded)
	if !ok {
		t.Fatal("expected a match")
	}
	if distance != 1 {
		t.Errorf("expected closest distance 1, got %d (%q)", distance, match)
	}
	for _, candidate := range trie.Values() {
		if Distance("kittin", candidate) < distance {
			t.Errorf("found %q at distance %d which is closer than reported best %q at %d", candidate, Distance("kittin", candidate), match, distance)
		}
	}
}

func TestTrie_FindOne_NoMatchWithinBudget(t *testing.T) {
	trie := NewTrie("apple", "orange", "banana")
	if _, _, ok := trie.FindOne("zzzzzzzzzz", 1); ok {
		t.Error("expected no match within a tight budget")
	}
}

func TestTrie_FindOne_EmptyTrie(t *testing.T) {
	trie := NewTrie()
	if _, _, ok := trie.FindOne("anything", Unbounded); ok {
		t.Error("expected no match on an empty trie")
	}
}

func TestTrie_Values_Deduplicates(t *testing.T) {
	trie := NewTrie("a", "a", "b")
	values := trie.Values()
	if len(values) != 2 {
		t.Errorf("expected 2 distinct values, got %d: %v", len(values), values)
	}
}

func TestTrie_Insert_DuplicateUpdatesSameTerminal(t *testing.T) {
	trie := NewTrie()
	trie.Insert("word")
	trie.Insert("word")

	if len(trie.Values()) != 1 {
		t.Errorf("expected 1 value after duplicate inserts, got %d", len(trie.Values()))
	}
}
