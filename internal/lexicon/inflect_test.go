package lexicon

import "testing"

func TestInflectedSurface(t *testing.T) {
	tests := []struct {
		base, baseReading, reading string
		want                       string
		ok                         bool
	}{
		{"書く", "かく", "かい", "書い", true},
		{"食べる", "たべる", "たべ", "食べ", true},
		{"する", "する", "し", "し", true},
		{"来る", "くる", "き", "", false},
		{"美しい", "うつくしい", "うつくしく", "美しく", true},
	}
	for _, tt := range tests {
		got, ok := inflectedSurface(tt.base, tt.baseReading, tt.reading)
		if got != tt.want || ok != tt.ok {
			t.Errorf("inflectedSurface(%q, %q, %q) = %q, %v, want %q, %v",
				tt.base, tt.baseReading, tt.reading, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEntryOf(t *testing.T) {
	bases := map[string]string{"書く\x00五段・カ行イ音便": "かく"}

	e, ok := entryOf([]string{"名詞", "一般", "*", "*", "*", "*", "漢字", "カンジ", "カンジ"}, bases)
	if !ok || e.Key != "かんじ" || e.Value != "漢字" {
		t.Errorf("unexpected noun entry: %+v %v", e, ok)
	}

	e, ok = entryOf([]string{"動詞", "自立", "*", "*", "五段・カ行イ音便", "連用タ接続", "書く", "カイ", "カイ"}, bases)
	if !ok || e.Key != "かい" || e.Value != "書い" {
		t.Errorf("unexpected verb entry: %+v %v", e, ok)
	}

	if _, ok := entryOf([]string{"名詞", "一般", "*", "*", "*", "*", "ABC"}, bases); ok {
		t.Errorf("entries without a reading must be skipped")
	}
	if _, ok := entryOf([]string{"記号", "一般", "*", "*", "*", "*", "★", "ホシ", "ホシ"}, nil); !ok {
		t.Errorf("symbols with a kana reading are kept")
	}
}
