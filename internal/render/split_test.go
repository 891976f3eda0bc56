package render

import (
	"reflect"
	"testing"

	"github.com/jamoveo/jamoveo-backend/internal/models"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name   string
		chords string
		lyrics string
		want   []Line
	}{
		{
			name:   "equal length",
			chords: "C\nG",
			lyrics: "Hey\nJude",
			want:   []Line{{"C", "Hey"}, {"G", "Jude"}},
		},
		{
			name:   "more lyrics than chords",
			chords: "C",
			lyrics: "Hey\nJude\nDon't",
			want:   []Line{{"C", "Hey"}, {"", "Jude"}, {"", "Don't"}},
		},
		{
			name:   "more chords than lyrics",
			chords: "C\nG\nAm",
			lyrics: "Hey",
			want:   []Line{{"C", "Hey"}, {"G", ""}, {"Am", ""}},
		},
		{
			name:   "chords only",
			chords: "C\nG",
			lyrics: "",
			want:   []Line{{"C", ""}, {"G", ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.chords, tt.lyrics)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%q, %q) = %+v, want %+v", tt.chords, tt.lyrics, got, tt.want)
			}
		})
	}
}

func TestForInstrument(t *testing.T) {
	content := models.SongContent{
		Chords:  "C\nG",
		Lyrics:  "Hey\nJude",
		RawText: "C\nHey\nG\nJude",
	}

	t.Run("vocals see lyrics only", func(t *testing.T) {
		got := ForInstrument(content, models.InstrumentVocals)
		want := []Line{{"", "Hey"}, {"", "Jude"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	})

	t.Run("guitars see paired chords and lyrics", func(t *testing.T) {
		got := ForInstrument(content, models.InstrumentGuitars)
		want := []Line{{"C", "Hey"}, {"G", "Jude"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	})

	t.Run("no content falls back to raw text", func(t *testing.T) {
		raw := models.SongContent{RawText: "just some tab"}
		if got := ForInstrument(raw, models.InstrumentGuitars); got != nil {
			t.Errorf("Expected nil lines so the caller renders raw text, got %+v", got)
		}
	})
}
