package synthetic

import "testing"

import "github.com/CDupuis7/tML-EC-QR/breath"

func TestGenerate(t *testing.T) {
	tab := Generate(100, 42)
	if tab.Len() != 100 {
		t.Fatalf("generated %d samples", tab.Len())
	}
	if len(tab.Names) != 4 || tab.Names[0] != "breathing_rate" {
		t.Errorf("feature names %v", tab.Names)
	}
	counts := tab.Balance()
	if counts[0] == 0 || counts[1] == 0 {
		t.Errorf("degenerate class balance %v", counts)
	}
	for i, row := range tab.Rows {
		if row[0] < 5 || row[0] > 35 {
			t.Fatalf("row %d rate %v out of range", i, row[0])
		}
		if row[1] < 0 || row[1] > 0.8 || row[2] < 0 || row[2] > 80 || row[3] < 0 || row[3] > 15 {
			t.Fatalf("row %d out of range: %v", i, row)
		}
		want := 0
		if breath.Abnormal(row[0], row[1], row[2], row[3]) {
			want = 1
		}
		if tab.Labels[i] != want {
			t.Fatalf("row %d label %d disagrees with the voting rule", i, tab.Labels[i])
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(10, 7)
	b := Generate(10, 7)
	for i := range a.Rows {
		for j := range a.Rows[i] {
			if a.Rows[i][j] != b.Rows[i][j] {
				t.Fatal("same seed produced different tables")
			}
		}
	}
	c := Generate(10, 8)
	if a.Rows[0][0] == c.Rows[0][0] {
		t.Error("different seeds produced identical first rows")
	}
}
