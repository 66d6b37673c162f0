package nlparse_test

import (
	"reflect"
	"testing"

	"smart-reminders/pkg/nlparse"
)

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Buy milk, Call mom tomorrow 5pm", []string{"Buy milk", "Call mom tomorrow 5pm"}},
		{"  a ,, b ,", []string{"a", "b"}},
		{"single", []string{"single"}},
		{"", []string{}},
		{" , , ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := nlparse.SplitSegments(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSegments(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBulk(t *testing.T) {
	p := newUTCParser(t)

	got := p.ParseBulk("Buy milk, Call mom tomorrow 5pm", refNow)
	if len(got) != 2 {
		t.Fatalf("ParseBulk() returned %d reminders, want 2", len(got))
	}

	if got[0].Title != "Buy milk" || got[0].DueDate != "2024-05-07" || got[0].DueTime != "" {
		t.Errorf("first reminder = %+v", got[0])
	}
	if got[1].Title != "Call mom" {
		t.Errorf("second Title = %q, want %q", got[1].Title, "Call mom")
	}
	if got[1].DueDate != "2024-05-08" || got[1].DueTime != "17:00" {
		t.Errorf("second due = %s %s, want 2024-05-08 17:00", got[1].DueDate, got[1].DueTime)
	}
	if got[1].Category != nlparse.CategoryFamily {
		t.Errorf("second Category = %s, want family", got[1].Category)
	}
}

func TestParseBulk_MatchesSingleParse(t *testing.T) {
	p := newUTCParser(t)

	segments := []string{"pay rent on friday", "gym every monday and wednesday", "call dad asap"}
	bulk := p.ParseBulk(segments[0]+", "+segments[1]+" , "+segments[2], refNow)
	if len(bulk) != len(segments) {
		t.Fatalf("ParseBulk() returned %d reminders, want %d", len(bulk), len(segments))
	}
	for i, segment := range segments {
		if want := p.Parse(segment, refNow); !reflect.DeepEqual(bulk[i], want) {
			t.Errorf("segment %d = %+v, want %+v", i, bulk[i], want)
		}
	}
}

func TestParseBulk_Empty(t *testing.T) {
	p := newUTCParser(t)

	if got := p.ParseBulk(" , ,", refNow); len(got) != 0 {
		t.Errorf("ParseBulk() = %+v, want empty", got)
	}
}
