package analyzer

import (
	"fmt"

	"blackpixel/pkg/colorutil"

	"gonum.org/v1/gonum/stat"
)

const (
	// MinThreshold and MaxThreshold bound the blackify cutoff.
	MinThreshold = 0
	MaxThreshold = 255
)

// ChannelStat holds summary statistics for one color channel.
type ChannelStat struct {
	Mean   float64
	StdDev float64
}

// CountBlack returns the number of pixels whose three channels are all zero.
func CountBlack(buf *Buffer) (int, error) {
	if err := buf.Validate(); err != nil {
		return 0, err
	}
	count := 0
	for i := 0; i < len(buf.Pix); i += RGBChannels {
		if colorutil.IsBlack(buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2]) {
			count++
		}
	}
	return count, nil
}

// PercentageBlack returns the share of pure-black pixels, in percent.
func PercentageBlack(buf *Buffer) (float64, error) {
	count, err := CountBlack(buf)
	if err != nil {
		return 0, err
	}
	return float64(count) / float64(buf.Len()) * 100, nil
}

// Blackify returns a copy of buf in which every pixel with all three
// channels at or below threshold is set to pure black. The source buffer is
// left untouched.
func Blackify(buf *Buffer, threshold int) (*Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if threshold < MinThreshold || threshold > MaxThreshold {
		return nil, fmt.Errorf("%w: threshold %d outside [%d, %d]", ErrInvalidInput, threshold, MinThreshold, MaxThreshold)
	}

	out := buf.Clone()
	t := uint8(threshold)
	for i := 0; i < len(out.Pix); i += RGBChannels {
		p := out.Pix[i : i+RGBChannels : i+RGBChannels]
		if colorutil.AllAtMost(p[0], p[1], p[2], t) {
			p[0], p[1], p[2] = 0, 0, 0
		}
	}
	return out, nil
}

// ChannelStats returns the mean and standard deviation of each of the red,
// green and blue channels.
func ChannelStats(buf *Buffer) ([RGBChannels]ChannelStat, error) {
	var stats [RGBChannels]ChannelStat
	if err := buf.Validate(); err != nil {
		return stats, err
	}

	n := buf.Len()
	samples := make([]float64, n)
	for c := 0; c < RGBChannels; c++ {
		for i := 0; i < n; i++ {
			samples[i] = float64(buf.Pix[i*RGBChannels+c])
		}
		mean, std := stat.MeanStdDev(samples, nil)
		if n == 1 {
			std = 0
		}
		stats[c] = ChannelStat{Mean: mean, StdDev: std}
	}
	return stats, nil
}

// FormatPercentage renders a percentage with two decimals, e.g. "12.34%".
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
