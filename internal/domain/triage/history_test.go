package triage

import "testing"

func TestAnalyzeHistoryEmpty(t *testing.T) {
	a := newTestEngine().analyzeHistory(nil)
	if a.Score != 0 || a.ChronicCount != 0 {
		t.Errorf("expected zero-value analysis, got %+v", a)
	}
	if a.HasCardiacHistory || a.HasRespiratoryHistory || a.HasNeuroHistory || a.HasOrthopedicHistory {
		t.Errorf("expected no category flags, got %+v", a)
	}
}

func TestAnalyzeHistoryCategories(t *testing.T) {
	cases := []struct {
		condition string
		want      int
	}{
		{"Coronary Artery Disease", 8},
		{"COPD", 6},
		{"Epilepsy", 7},
		{"Arthritis", 6},
		{"Diabetes Type 2", 5},
		{"GERD", 0},
	}

	e := newTestEngine()
	for _, tc := range cases {
		a := e.analyzeHistory([]Condition{{Name: tc.condition}})
		if a.Score != tc.want {
			t.Errorf("%s: expected score %d, got %d", tc.condition, tc.want, a.Score)
		}
	}
}

func TestAnalyzeHistoryChronicBonus(t *testing.T) {
	a := newTestEngine().analyzeHistory([]Condition{
		{Name: "GERD", IsChronic: true},
		{Name: "Migraine", IsChronic: true},
	})
	if a.ChronicCount != 2 {
		t.Errorf("expected chronic count 2, got %d", a.ChronicCount)
	}
	if a.Score != 4 {
		t.Errorf("expected score 4, got %d", a.Score)
	}
}

func TestAnalyzeHistoryMultiCategory(t *testing.T) {
	// A condition can land in more than one category.
	a := newTestEngine().analyzeHistory([]Condition{{Name: "Diabetes with Heart Failure", IsChronic: true}})
	// 2 chronic + 8 cardiac + 5 diabetes.
	if a.Score != 15 {
		t.Errorf("expected score 15, got %d", a.Score)
	}
	if !a.HasCardiacHistory {
		t.Error("expected cardiac flag")
	}
	if a.CardiacConditions[0] != "Diabetes With Heart Failure" {
		t.Errorf("expected title-cased condition, got %s", a.CardiacConditions[0])
	}
}

func TestAnalyzeHistoryCap(t *testing.T) {
	a := newTestEngine().analyzeHistory([]Condition{
		{Name: "Heart Failure", IsChronic: true},
		{Name: "COPD", IsChronic: true},
		{Name: "Stroke", IsChronic: true},
		{Name: "Diabetes", IsChronic: true},
	})
	if a.Score != 20 {
		t.Errorf("expected capped score 20, got %d", a.Score)
	}
}

func TestAgeFactor(t *testing.T) {
	cases := []struct {
		age  int
		want int
	}{
		{85, 10},
		{80, 10},
		{75, 7},
		{65, 5},
		{40, 0},
		{13, 0},
		{10, 5},
		{4, 8},
		{0, 8},
	}

	for _, tc := range cases {
		if got := AgeFactor(tc.age); got != tc.want {
			t.Errorf("age %d: expected %d, got %d", tc.age, tc.want, got)
		}
	}
}
