package triage

// NormalizeEncounter returns a defensive copy of enc with every absent field
// replaced by its physiological default: age 40, BP 120/80, heart rate 80,
// temperature 98.6°F, and nil slices replaced with empty ones. The input is
// never mutated; normalizing an already-normalized encounter is a no-op.
func NormalizeEncounter(enc *PatientEncounter) *PatientEncounter {
	out := &PatientEncounter{
		ChiefComplaint: enc.ChiefComplaint,
	}

	age := defaultAge
	if enc.Age != nil {
		age = *enc.Age
	}
	if age < 0 {
		age = 0
	}
	out.Age = &age

	v := Vitals{}
	if enc.Vitals != nil {
		v = *enc.Vitals
	}
	out.Vitals = &Vitals{
		BPSystolic:  intOrDefault(v.BPSystolic, defaultBPSystolic),
		BPDiastolic: intOrDefault(v.BPDiastolic, defaultBPDiastolic),
		HeartRate:   intOrDefault(v.HeartRate, defaultHeartRate),
		Temperature: floatOrDefault(v.Temperature, defaultTemperature),
	}

	out.Symptoms = make([]Symptom, len(enc.Symptoms))
	copy(out.Symptoms, enc.Symptoms)

	out.MedicalHistory = make([]Condition, len(enc.MedicalHistory))
	copy(out.MedicalHistory, enc.MedicalHistory)

	return out
}

func intOrDefault(p *int, def int) *int {
	if p != nil {
		v := *p
		return &v
	}
	v := def
	return &v
}

func floatOrDefault(p *float64, def float64) *float64 {
	if p != nil {
		v := *p
		return &v
	}
	v := def
	return &v
}
