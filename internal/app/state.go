// Package app provides application state, settings, events and the
// per-window blackify session.
package app

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"blackpixel/internal/analyzer"
	bpimage "blackpixel/internal/image"
)

// State holds process-lifetime application state. Nothing in it is written
// to disk.
type State struct {
	mu sync.RWMutex

	Config Config

	// Directory of the last opened or saved file, reused by file dialogs
	lastDir string

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventPercentageComputed EventType = iota
	EventBlackifyOpened
	EventImageSaved
	EventLoadFailed
)

func (e EventType) String() string {
	switch e {
	case EventPercentageComputed:
		return "PercentageComputed"
	case EventBlackifyOpened:
		return "BlackifyOpened"
	case EventImageSaved:
		return "ImageSaved"
	case EventLoadFailed:
		return "LoadFailed"
	default:
		return "Unknown"
	}
}

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// AnalysisResult is the outcome of the percentage flow for one file.
type AnalysisResult struct {
	Path       string
	Percentage float64
	Channels   [analyzer.RGBChannels]analyzer.ChannelStat
}

// Message renders the result for the result dialog.
func (r AnalysisResult) Message() string {
	return fmt.Sprintf("Black Pixel Percentage: %s\n\nMean RGB: %.1f, %.1f, %.1f",
		analyzer.FormatPercentage(r.Percentage),
		r.Channels[0].Mean, r.Channels[1].Mean, r.Channels[2].Mean)
}

// LoadError is the payload of EventLoadFailed.
type LoadError struct {
	Path string
	Err  error
}

// SavedImage is the payload of EventImageSaved.
type SavedImage struct {
	Path      string
	Threshold int
}

// NewState creates a new application state.
func NewState(cfg Config) *State {
	return &State{
		Config:    cfg,
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// LastDir returns the directory of the last file used, or "".
func (s *State) LastDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastDir
}

// RememberPath records the directory of path for the next file dialog.
func (s *State) RememberPath(path string) {
	s.mu.Lock()
	s.lastDir = filepath.Dir(path)
	s.mu.Unlock()
}

// AnalyzeFile loads the image at path and measures its black pixels.
func (s *State) AnalyzeFile(path string) (AnalysisResult, error) {
	s.RememberPath(path)

	img, err := bpimage.Load(path)
	if err != nil {
		s.loadFailed(path, err)
		return AnalysisResult{}, err
	}

	buf := analyzer.FromImage(img)
	pct, err := analyzer.PercentageBlack(buf)
	if err != nil {
		s.loadFailed(path, err)
		return AnalysisResult{}, err
	}
	channels, err := analyzer.ChannelStats(buf)
	if err != nil {
		s.loadFailed(path, err)
		return AnalysisResult{}, err
	}

	result := AnalysisResult{Path: path, Percentage: pct, Channels: channels}
	log.Printf("%s: %s black (%dx%d)", filepath.Base(path), analyzer.FormatPercentage(pct), buf.Width, buf.Height)
	s.Emit(EventPercentageComputed, result)
	return result, nil
}

// OpenSession starts a blackify session for the image at path.
func (s *State) OpenSession(path string) (*Session, error) {
	s.RememberPath(path)

	session, err := NewSession(path, s.Config)
	if err != nil {
		s.loadFailed(path, err)
		return nil, err
	}

	log.Printf("Blackify: opened %s (%dx%d)", filepath.Base(path), session.Original().Width, session.Original().Height)
	s.Emit(EventBlackifyOpened, session)
	return session, nil
}

// ImageSaved records a successful save and notifies listeners.
func (s *State) ImageSaved(path string, threshold int) {
	s.RememberPath(path)
	log.Printf("Blackify: saved %s at threshold %d", path, threshold)
	s.Emit(EventImageSaved, SavedImage{Path: path, Threshold: threshold})
}

func (s *State) loadFailed(path string, err error) {
	log.Printf("Failed to load %s: %v", path, err)
	s.Emit(EventLoadFailed, LoadError{Path: path, Err: err})
}
