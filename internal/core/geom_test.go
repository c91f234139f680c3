package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestParseWaveform(t *testing.T) {
	tests := []struct {
		name    string
		want    Waveform
		wantErr bool
	}{
		{"sine", WaveSine, false},
		{"", WaveSine, false},
		{"triangle", WaveTriangle, false},
		{"sawtooth", WaveSaw, false},
		{"noise", WaveSine, true},
	}

	for _, tc := range tests {
		got, err := ParseWaveform(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseWaveform(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseWaveform(%q) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}
