package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		perPage   int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"halaman pertama dari banyak", 95, 1, 20, 5, true, false},
		{"halaman tengah", 95, 3, 20, 5, true, true},
		{"halaman terakhir", 95, 5, 20, 5, false, true},
		{"data pas satu halaman", 20, 1, 20, 1, false, false},
		{"data kosong tetap satu halaman", 0, 1, 20, 1, false, false},
		{"sisa satu item", 41, 3, 20, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNext != tt.wantNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantNext)
			}
			if p.HasPrev != tt.wantPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantPrev)
			}
		})
	}
}
