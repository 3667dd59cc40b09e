package milestone

import "testing"

func TestStatusOfThresholds(t *testing.T) {
	tests := []struct {
		count int
		want  Status
	}{
		{0, StatusNotStarted},
		{1, StatusLearning},
		{2, StatusLearning},
		{3, StatusPracticing},
		{4, StatusPracticing},
		{5, StatusPolishing},
		{6, StatusPolishing},
		{7, StatusMastered},
		{8, StatusMastered},
	}

	for _, tt := range tests {
		set := All()[:tt.count]
		got := StatusOf(set)
		if got != tt.want {
			t.Errorf("StatusOf(%d milestones) = %s, want %s", tt.count, got, tt.want)
		}
	}
}

func TestStatusOfMonotonic(t *testing.T) {
	all := All()
	prev := -1
	for n := 0; n <= Max; n++ {
		rank := StatusOf(all[:n]).Rank()
		if rank < prev {
			t.Fatalf("rank decreased at %d milestones: %d -> %d", n, prev, rank)
		}
		prev = rank
	}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	set := []Milestone{NotesLearned}

	set = Toggle(set, RightHand)
	if !Contains(set, RightHand) {
		t.Fatal("expected right-hand after toggle")
	}
	if len(set) != 2 {
		t.Fatalf("len = %d, want 2", len(set))
	}

	set = Toggle(set, RightHand)
	if Contains(set, RightHand) {
		t.Fatal("expected right-hand removed after second toggle")
	}
	if len(set) != 1 {
		t.Fatalf("len = %d, want 1", len(set))
	}
}

func TestToggleRejectsUnknown(t *testing.T) {
	set := []Milestone{NotesLearned}
	got := Toggle(set, Milestone("shredding"))
	if len(got) != 1 || got[0] != NotesLearned {
		t.Errorf("Toggle with unknown milestone = %v, want unchanged", got)
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	set := []Milestone{NotesLearned, RightHand}
	_ = Toggle(set, LeftHand)
	if len(set) != 2 {
		t.Errorf("input mutated: %v", set)
	}
}

func TestCountIgnoresDuplicatesAndUnknown(t *testing.T) {
	set := []Milestone{NotesLearned, NotesLearned, Milestone("bogus"), Tempo}
	if got := Count(set); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
}

func TestCompletion(t *testing.T) {
	if got := Completion(nil); got != 0 {
		t.Errorf("Completion(nil) = %f, want 0", got)
	}
	if got := Completion(All()); got != 1 {
		t.Errorf("Completion(all) = %f, want 1", got)
	}
	if got := Completion([]Milestone{NotesLearned, RightHand}); got != 0.25 {
		t.Errorf("Completion(2) = %f, want 0.25", got)
	}
}

func TestStatusRankOrder(t *testing.T) {
	statuses := AllStatuses()
	for i, s := range statuses {
		if s.Rank() != i {
			t.Errorf("%s.Rank() = %d, want %d", s, s.Rank(), i)
		}
	}
}
