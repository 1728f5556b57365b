package schedule

import "testing"

func TestLookup(t *testing.T) {
	opener, ok := Lookup(1)
	if !ok {
		t.Fatalf("match 1 missing")
	}
	if opener.Venue != "Mexico City" || opener.Stadium != "Estadio Azteca" || opener.Stage != "Group A" {
		t.Fatalf("match 1 = %+v", opener)
	}

	final, ok := Lookup(104)
	if !ok {
		t.Fatalf("match 104 missing")
	}
	if final.Stage != "Final" || final.Stadium != "MetLife Stadium" {
		t.Fatalf("match 104 = %+v", final)
	}

	if _, ok := Lookup(105); ok {
		t.Fatalf("match 105 should not exist")
	}
	if _, ok := Lookup(0); ok {
		t.Fatalf("match 0 should not exist")
	}
}

func TestTableComplete(t *testing.T) {
	for n := 1; n <= 104; n++ {
		m, ok := Lookup(n)
		if !ok {
			t.Fatalf("match %d missing", n)
		}
		if m.Date == "" || m.Venue == "" || m.Stadium == "" || m.Stage == "" {
			t.Fatalf("match %d incomplete: %+v", n, m)
		}
	}
}

func TestCountry(t *testing.T) {
	tests := []struct {
		venue string
		want  string
	}{
		{"Toronto", "Canada"},
		{"Vancouver", "Canada"},
		{"Mexico City", "Mexico"},
		{"Zapopan", "Mexico"},
		{"Guadalupe", "Mexico"},
		{"Monterrey", "Mexico"},
		{"East Rutherford", "USA"},
		{"Seattle", "USA"},
	}
	for _, tt := range tests {
		if got := Country(tt.venue); got != tt.want {
			t.Errorf("Country(%q) = %q, want %q", tt.venue, got, tt.want)
		}
	}
}
