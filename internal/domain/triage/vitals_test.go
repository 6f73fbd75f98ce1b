package triage

import "testing"

func normalVitals() *Vitals {
	return &Vitals{
		BPSystolic:  ptrInt(defaultBPSystolic),
		BPDiastolic: ptrInt(defaultBPDiastolic),
		HeartRate:   ptrInt(defaultHeartRate),
		Temperature: ptrFloat(defaultTemperature),
	}
}

func TestAnalyzeVitalsNormal(t *testing.T) {
	a := newTestEngine().analyzeVitals(normalVitals())
	if a.Score != 0 {
		t.Errorf("expected zero score, got %d", a.Score)
	}
	if len(a.AbnormalVitals) != 0 {
		t.Errorf("expected no abnormal vitals, got %v", a.AbnormalVitals)
	}
	if a.HasCriticalBP || a.HasCriticalHR || a.HasFever {
		t.Errorf("expected no critical flags, got %+v", a)
	}
}

func TestAnalyzeVitalsSystolicLadder(t *testing.T) {
	cases := []struct {
		sys  int
		want int
	}{
		{185, 10},
		{165, 7},
		{145, 5},
		{120, 0},
		{85, 8},
	}

	e := newTestEngine()
	for _, tc := range cases {
		v := normalVitals()
		v.BPSystolic = ptrInt(tc.sys)
		a := e.analyzeVitals(v)
		if a.Score != tc.want {
			t.Errorf("systolic %d: expected score %d, got %d", tc.sys, tc.want, a.Score)
		}
	}
}

func TestAnalyzeVitalsHeartRateLadder(t *testing.T) {
	cases := []struct {
		hr   int
		want int
	}{
		{125, 10},
		{105, 7},
		{80, 0},
		{55, 5},
	}

	e := newTestEngine()
	for _, tc := range cases {
		v := normalVitals()
		v.HeartRate = ptrInt(tc.hr)
		a := e.analyzeVitals(v)
		if a.Score != tc.want {
			t.Errorf("heart rate %d: expected score %d, got %d", tc.hr, tc.want, a.Score)
		}
	}
}

func TestAnalyzeVitalsTemperatureLadder(t *testing.T) {
	cases := []struct {
		temp float64
		want int
	}{
		{103.1, 8},
		{100.4, 5},
		{98.6, 0},
		{95.2, 5},
	}

	e := newTestEngine()
	for _, tc := range cases {
		v := normalVitals()
		v.Temperature = ptrFloat(tc.temp)
		a := e.analyzeVitals(v)
		if a.Score != tc.want {
			t.Errorf("temperature %v: expected score %d, got %d", tc.temp, tc.want, a.Score)
		}
	}
}

func TestAnalyzeVitalsCriticalFlags(t *testing.T) {
	e := newTestEngine()

	v := normalVitals()
	v.BPSystolic = ptrInt(190)
	if a := e.analyzeVitals(v); !a.HasCriticalBP {
		t.Error("expected critical BP for systolic 190")
	}

	v = normalVitals()
	v.BPDiastolic = ptrInt(112)
	if a := e.analyzeVitals(v); !a.HasCriticalBP {
		t.Error("expected critical BP for diastolic 112")
	}

	v = normalVitals()
	v.HeartRate = ptrInt(45)
	if a := e.analyzeVitals(v); !a.HasCriticalHR {
		t.Error("expected critical HR for rate 45")
	}

	v = normalVitals()
	v.Temperature = ptrFloat(100.5)
	if a := e.analyzeVitals(v); !a.HasFever {
		t.Error("expected fever flag for 100.5")
	}
}

func TestAnalyzeVitalsCap(t *testing.T) {
	a := newTestEngine().analyzeVitals(&Vitals{
		BPSystolic:  ptrInt(190),
		BPDiastolic: ptrInt(115),
		HeartRate:   ptrInt(130),
		Temperature: ptrFloat(103.0),
	})
	// 10 + 8 + 10 + 8 = 36, capped at 30.
	if a.Score != 30 {
		t.Errorf("expected capped score 30, got %d", a.Score)
	}
}
