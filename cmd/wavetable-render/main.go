// Command wavetable-render renders a morphing oscillator sweep from a
// wavetable WAV file.
//
// The input file holds single-cycle waveforms concatenated back to back,
// every frame the same length (the layout used by common wavetable
// synth formats). Each frame becomes one row of the morph axis.
//
// Usage:
//
//	wavetable-render table.wav output.wav
//	wavetable-render -frame 256 -freq 110 -dur 4 table.wav output.wav
//	wavetable-render -kernel linear -boundary clamp table.wav output.wav
//	wavetable-render -stereo -detune 8 table.wav output.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	wavetable "github.com/tphakala/go-wavetable"
	"github.com/tphakala/go-wavetable/internal/simdops"
)

const (
	// CLI defaults
	defaultFrameLen = 2048 // samples per single-cycle frame
	defaultFreq     = 220.0
	defaultDuration = 2.0
	defaultRate     = 44100
	defaultGain     = 0.8
	defaultDetune   = 6.0 // cents between stereo voices

	minRequiredArgs = 2

	// Sample format constants
	maxInt16      = 32767.0
	outputBitRate = 16

	centsPerOctave = 1200.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	frameLen := flag.Int("frame", defaultFrameLen, "Samples per single-cycle frame in the input table")
	freq := flag.Float64("freq", defaultFreq, "Oscillator frequency in Hz")
	duration := flag.Float64("dur", defaultDuration, "Output duration in seconds")
	rate := flag.Int("rate", defaultRate, "Output sample rate in Hz")
	kernelTag := flag.String("kernel", "cubic", "Interpolation kernel: linear, cubic")
	boundaryTag := flag.String("boundary", "wrap", "Boundary policy: wrap, bounce, clamp, zero")
	gain := flag.Float64("gain", defaultGain, "Output gain (linear)")
	morphFrom := flag.Float64("morph-from", 0, "Morph position at the start of the sweep, in [0,1)")
	morphTo := flag.Float64("morph-to", 1, "Morph position at the end of the sweep")
	stereo := flag.Bool("stereo", false, "Render two detuned voices to a stereo file")
	detune := flag.Float64("detune", defaultDetune, "Detune between stereo voices in cents")
	parallel := flag.Bool("parallel", true, "Enable parallel batch processing")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] table.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s table.wav sweep.wav                  # Full-table morph sweep\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -freq 55 -dur 8 table.wav bass.wav   # Slow low sweep\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -stereo -detune 10 table.wav pad.wav # Detuned stereo pad\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	tablePath := args[0]
	outputPath := args[1]

	kernel, err := wavetable.ParseKernel(*kernelTag)
	if err != nil {
		return err
	}
	boundary, err := wavetable.ParseBoundary(*boundaryTag)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Table: %s (frame length %d)", tablePath, *frameLen)
		log.Printf("Output: %s (%d Hz, %.2fs)", outputPath, *rate, *duration)
		log.Printf("Kernel: %s, boundary: %s", kernel, boundary)
		log.Printf("SIMD: %s", simdops.CPUInfo())
	}

	tbl, err := loadWavetable(tablePath, *frameLen, *verbose)
	if err != nil {
		return err
	}

	sampler, err := wavetable.NewSampler(&wavetable.Config{
		Kernel:         kernel,
		Boundary:       boundary,
		EnableParallel: *parallel,
	})
	if err != nil {
		return err
	}

	numSamples := int(*duration * float64(*rate))
	phaseInc := *freq / float64(*rate)

	start := time.Now()

	channels := 1
	var out []float32
	if *stereo {
		channels = 2
		ratio := math.Pow(2, *detune/centsPerOctave)

		leftN, leftP := sweepCoords(numSamples, *morphFrom, *morphTo, phaseInc, 0)
		rightN, rightP := sweepCoords(numSamples, *morphFrom, *morphTo, phaseInc*ratio, 0)

		if err := sampler.ProcessMulti(tbl,
			[][]float32{leftN, rightN},
			[][]float32{leftP, rightP},
		); err != nil {
			return err
		}

		out = make([]float32, 2*numSamples)
		simdops.Float32Ops().Interleave2(out, leftP, rightP)
	} else {
		numbers, phases := sweepCoords(numSamples, *morphFrom, *morphTo, phaseInc, 0)
		if err := sampler.Process(tbl, numbers, phases); err != nil {
			return err
		}
		out = phases
	}

	simdops.Float32Ops().Scale(out, out, float32(*gain))

	if *verbose {
		dc := simdops.Float32Ops().Sum(out) / float32(len(out))
		log.Printf("DC offset after gain: %+.6f", dc)
	}

	if err := writeWAV16(outputPath, toPCM16(out), *rate, channels); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Rendered %s -> %s\n", filepath.Base(tablePath), filepath.Base(outputPath))
	fmt.Printf("  %dx%d table, %s kernel, %s boundary\n", tbl.Rows(), tbl.Columns(), kernel, boundary)
	fmt.Printf("  %d samples (%d channels, %d-bit) at %d Hz\n",
		numSamples, channels, outputBitRate, *rate)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(), *duration/elapsed.Seconds())

	return nil
}
