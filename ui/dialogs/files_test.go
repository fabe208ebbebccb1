package dialogs

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestOpenChosen(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)
	win := a.NewWindow("open")
	t.Cleanup(win.Close)

	cases := []struct {
		path string
		want bool
	}{
		{"photo.png", true},
		{"PHOTO.JPG", true},
		{"scan.tiff", true},
		{"notes.txt", false},
		{"noext", false},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			var got []string
			ok := openChosen(win, c.path, func(path string) {
				got = append(got, path)
			})
			assert.Equal(t, c.want, ok)
			if c.want {
				assert.Equal(t, []string{c.path}, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}
