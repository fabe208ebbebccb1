package app

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"blackpixel/internal/analyzer"
	bpimage "blackpixel/internal/image"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeImage saves a w x h image whose left column is pure black, second
// column is (10,10,10) and remainder is (40,20,200).
func writeImage(t *testing.T, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{40, 20, 200, 255}
			switch x {
			case 0:
				c = color.NRGBA{0, 0, 0, 255}
			case 1:
				c = color.NRGBA{10, 10, 10, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, bpimage.Save(img, path))
	return path
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"threshold low", func(c *Config) { c.DefaultThreshold = -1 }},
		{"threshold high", func(c *Config) { c.DefaultThreshold = 256 }},
		{"preview", func(c *Config) { c.PreviewMaxSize = 0 }},
		{"window", func(c *Config) { c.BlackifyWidth = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestAnalyzeFile(t *testing.T) {
	path := writeImage(t, "four.png", 4, 3)
	s := NewState(DefaultConfig())

	var events []AnalysisResult
	s.On(EventPercentageComputed, func(data interface{}) {
		events = append(events, data.(AnalysisResult))
	})

	result, err := s.AnalyzeFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, result.Percentage, 0.01)
	assert.Contains(t, result.Message(), "Black Pixel Percentage: 25.00%")
	assert.Equal(t, filepath.Dir(path), s.LastDir())
	require.Len(t, events, 1)
	assert.Equal(t, path, events[0].Path)
}

func TestAnalyzeFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jpg")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xd8, 0x00}, 0o644))
	s := NewState(DefaultConfig())

	var failed []LoadError
	s.On(EventLoadFailed, func(data interface{}) {
		failed = append(failed, data.(LoadError))
	})
	s.On(EventPercentageComputed, func(interface{}) {
		t.Fatal("no result expected for a corrupt file")
	})

	_, err := s.AnalyzeFile(path)
	require.Error(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, path, failed[0].Path)
}

func TestSessionDefaults(t *testing.T) {
	path := writeImage(t, "scan.png", 4, 2)
	s := NewState(DefaultConfig())

	opened := 0
	s.On(EventBlackifyOpened, func(interface{}) { opened++ })

	session, err := s.OpenSession(path)
	require.NoError(t, err)
	assert.Equal(t, 1, opened)
	assert.Equal(t, 32, session.Threshold())
	// black and (10,10,10) columns
	assert.InDelta(t, 50.0, session.Percentage(), 0.01)
	assert.Equal(t, "scan_blackified.png", session.SuggestedName())
}

func TestSessionSetThreshold(t *testing.T) {
	session, err := NewSession(writeImage(t, "t.png", 4, 2), DefaultConfig())
	require.NoError(t, err)

	cases := []struct {
		threshold int
		want      float64
	}{
		{0, 25},
		{9, 25},
		{10, 50},
		{199, 50},
		{200, 100},
		{255, 100},
	}
	for _, c := range cases {
		require.NoError(t, session.SetThreshold(c.threshold))
		assert.Equal(t, c.threshold, session.Threshold())
		assert.InDelta(t, c.want, session.Percentage(), 0.01, "threshold %d", c.threshold)
	}

	assert.ErrorIs(t, session.SetThreshold(256), analyzer.ErrInvalidInput)
	assert.Equal(t, 255, session.Threshold(), "failed update keeps the previous result")

	// the source is never modified
	pct, err := analyzer.PercentageBlack(session.Original())
	require.NoError(t, err)
	assert.InDelta(t, 25.0, pct, 0.01)
}

func TestSessionPreviewSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PreviewMaxSize = 10
	session, err := NewSession(writeImage(t, "big.png", 40, 20), cfg)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 10, 5), session.OriginalPreview().Bounds())
	assert.Equal(t, image.Rect(0, 0, 10, 5), session.ProcessedPreview().Bounds())

	img, err := session.Export()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds(), "export uses full resolution")
}

func TestSessionSaveTo(t *testing.T) {
	session, err := NewSession(writeImage(t, "src.png", 6, 3), DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, session.SetThreshold(10))

	out, err := session.SaveTo(filepath.Join(t.TempDir(), "result"))
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(out))

	img, err := bpimage.Load(out)
	require.NoError(t, err)
	buf := analyzer.FromImage(img)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, buf.At(1, 2))
	assert.Equal(t, color.RGBA{40, 20, 200, 255}, buf.At(5, 0))

	_, err = session.SaveTo(filepath.Join(t.TempDir(), "result.xyz"))
	assert.ErrorIs(t, err, bpimage.ErrUnsupportedFormat)
}

func TestEmitOrder(t *testing.T) {
	s := NewState(DefaultConfig())
	var order []int
	s.On(EventImageSaved, func(interface{}) { order = append(order, 1) })
	s.On(EventImageSaved, func(interface{}) { order = append(order, 2) })

	s.ImageSaved("/tmp/x/out.png", 40)
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, "/tmp/x", s.LastDir())
	assert.Equal(t, "ImageSaved", EventImageSaved.String())
}

// writeTransparentPNG saves a 2x2 paletted png whose pixels are all
// transparent white except an opaque (200,200,200) at (1,1).
func writeTransparentPNG(t *testing.T) string {
	t.Helper()
	pal := color.Palette{color.NRGBA{255, 255, 255, 0}, color.NRGBA{200, 200, 200, 255}}
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), pal)
	img.SetColorIndex(1, 1, 1)

	path := filepath.Join(t.TempDir(), "transparent.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestTransparentPixelsAreNotBlack(t *testing.T) {
	path := writeTransparentPNG(t)

	result, err := NewState(DefaultConfig()).AnalyzeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Percentage)

	session, err := NewSession(path, DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, session.SetThreshold(0))
	assert.Equal(t, 0.0, session.Percentage())
	require.NoError(t, session.SetThreshold(200))
	assert.Equal(t, 25.0, session.Percentage())
}
