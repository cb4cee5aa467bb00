package datasets

import "testing"

func sample(n int) Table {
	var t Table
	t.Init([]string{"a", "b"})
	for i := 0; i < n; i++ {
		t.Add([]float64{float64(i), float64(2 * i)}, i%3)
	}
	return t
}

func TestBalance(t *testing.T) {
	tab := sample(9)
	counts := tab.Balance()
	if counts[0] != 3 || counts[1] != 6 {
		t.Errorf("Balance = %v, want [3 6]", counts)
	}
}

func TestSplitSizesAndContent(t *testing.T) {
	tab := sample(10)
	train, test := tab.Split(0.3, 42)
	if train.Len() != 7 || test.Len() != 3 {
		t.Fatalf("split sizes %d/%d, want 7/3", train.Len(), test.Len())
	}
	seen := map[float64]bool{}
	for _, r := range append(append([][]float64{}, train.Rows...), test.Rows...) {
		if seen[r[0]] {
			t.Fatalf("row %v appears twice", r)
		}
		seen[r[0]] = true
	}
	if len(seen) != 10 {
		t.Fatalf("split lost rows, saw %d", len(seen))
	}
}

func TestSplitDeterministic(t *testing.T) {
	tab := sample(20)
	_, test1 := tab.Split(0.3, 42)
	_, test2 := tab.Split(0.3, 42)
	if test1.Len() != test2.Len() {
		t.Fatal("same seed produced different sizes")
	}
	for i := range test1.Rows {
		if test1.Rows[i][0] != test2.Rows[i][0] {
			t.Fatal("same seed produced different rows")
		}
	}
	_, test3 := tab.Split(0.3, 7)
	same := true
	for i := range test1.Rows {
		if test1.Rows[i][0] != test3.Rows[i][0] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical test sets")
	}
}

func TestSplitKeepsBothHalvesNonEmpty(t *testing.T) {
	tab := sample(2)
	train, test := tab.Split(0.9, 1)
	if train.Len() != 1 || test.Len() != 1 {
		t.Errorf("split of 2 rows gave %d/%d", train.Len(), test.Len())
	}
	single := sample(1)
	train, test = single.Split(0.3, 1)
	if train.Len()+test.Len() != 1 {
		t.Errorf("split of 1 row gave %d/%d", train.Len(), test.Len())
	}
}
