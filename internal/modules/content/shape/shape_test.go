package shape

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"two items", "Python,Go", []string{"Python", "Go"}},
		{"spaces trimmed", " Python , Go ", []string{"Python", "Go"}},
		{"empty string", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"trailing comma", "Python,", []string{"Python"}},
		{"single item", "Rust", []string{"Rust"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.raw)
			if got == nil {
				t.Fatal("SplitList returned nil, want empty slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestJoinListRoundTrip(t *testing.T) {
	joined := JoinList([]string{"Python", "Go"})
	if joined != "Python,Go" {
		t.Fatalf("JoinList = %q", joined)
	}
	if got := SplitList(joined); !reflect.DeepEqual(got, []string{"Python", "Go"}) {
		t.Errorf("round trip = %v", got)
	}
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"liveUrl", "live_url"},
		{"liveURL", "live_url"},
		{"live_url", "live_url"},
		{"titleEn", "title_en"},
		{"shortDescEs", "short_desc_es"},
		{"citationApa", "citation_apa"},
		{"mediaImages", "media_images"},
		{"id", "id"},
		{"year", "year"},
	}
	for _, tt := range tests {
		if got := CanonicalKey(tt.in); got != tt.want {
			t.Errorf("CanonicalKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeLoose(t *testing.T) {
	type record struct {
		TitleEn string `json:"title_en"`
		LiveURL string `json:"live_url"`
		Year    string `json:"year"`
	}

	tests := []struct {
		name string
		body string
		want record
	}{
		{
			"camelCase keys",
			`{"titleEn":"A","liveUrl":"https://a.dev","year":"2024"}`,
			record{TitleEn: "A", LiveURL: "https://a.dev", Year: "2024"},
		},
		{
			"snake_case keys",
			`{"title_en":"A","live_url":"https://a.dev","year":"2024"}`,
			record{TitleEn: "A", LiveURL: "https://a.dev", Year: "2024"},
		},
		{
			"mixed, snake wins over camel",
			`{"titleEn":"camel","title_en":"snake"}`,
			record{TitleEn: "snake"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got record
			if err := DecodeLoose([]byte(tt.body), &got); err != nil {
				t.Fatalf("DecodeLoose: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeLooseRejectsNonObject(t *testing.T) {
	var dst struct{}
	if err := DecodeLoose([]byte(`[1,2]`), &dst); err == nil {
		t.Error("DecodeLoose accepted a JSON array")
	}
}
