package sanitizer

import (
	"reflect"
	"testing"
)

func TestNormalizePhotos(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "nil becomes empty",
			input: nil,
			want:  []string{},
		},
		{
			name:  "urls are not rewritten",
			input: []string{"HTTPS://CDN.Example.com/Photos/A.jpg", "https://cdn.example.com/dir/"},
			want:  []string{"HTTPS://CDN.Example.com/Photos/A.jpg", "https://cdn.example.com/dir/"},
		},
		{
			name:  "empty and duplicate entries kept",
			input: []string{"https://x.io/a.jpg", "", "https://x.io/a.jpg"},
			want:  []string{"https://x.io/a.jpg", "", "https://x.io/a.jpg"},
		},
		{
			name:  "preserve order",
			input: []string{"https://x.io/2.jpg", "https://x.io/1.jpg"},
			want:  []string{"https://x.io/2.jpg", "https://x.io/1.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhotos(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizePhotos(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhotos_ReturnsCopy(t *testing.T) {
	input := []string{"https://x.io/a.jpg"}
	got := NormalizePhotos(input)
	got[0] = "changed"
	if input[0] != "https://x.io/a.jpg" {
		t.Errorf("NormalizePhotos shares its backing array with the input")
	}
}
