/*
Example code showing how to encode keypoints into heatmap and displacement
targets, visualize them, and decode them back into coordinates.

A synthetic landmark ring stands in for model output so the example runs
without a trained network.  The encoded heatmaps are passed through a
float16 round trip to mimic a half precision inference backend before
decoding.
*/
package main

import (
	"flag"
	"math"

	"github.com/mvane/go-kpcodec"
	"github.com/mvane/go-kpcodec/config"
	"github.com/mvane/go-kpcodec/eval"
	"github.com/mvane/go-kpcodec/render"
	"github.com/x448/float16"
	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

func main() {

	configFile := flag.String("c", "../data/codecs.yaml", "Codec configuration YAML file")
	codecName := flag.String("n", "wflw", "Name of codec to use from the configuration")
	saveFile := flag.String("o", "../data/heatmap-out.jpg", "Output JPG file (heatmap visualization)")

	flag.Parse()

	logger, err := zap.NewDevelopment()

	if err != nil {
		panic(err)
	}

	defer logger.Sync()

	cfg, err := config.Load(*configFile)

	if err != nil {
		logger.Fatal("Error loading config", zap.Error(err))
	}

	registry, err := cfg.BuildRegistry()

	if err != nil {
		logger.Fatal("Error building codec registry", zap.Error(err))
	}

	logger.Info("Codec registry built", zap.Strings("codecs", registry.Names()))

	cdc, err := registry.Get(*codecName)

	if err != nil {
		logger.Fatal("Error getting codec", zap.Error(err))
	}

	// synthesize a ring of landmarks around the input image centre
	keypoints := ringKeypoints(256, 256, 24, 80)

	enc, err := cdc.Encode([][]kpcodec.Point{keypoints}, nil)

	if err != nil {
		logger.Fatal("Error encoding keypoints", zap.Error(err))
	}

	logger.Info("Encoded keypoints",
		zap.Int("keypoints", len(keypoints)),
		zap.Int("heatmapChannels", enc.Heatmaps.Channels),
		zap.Int("displacementChannels", enc.Displacements.Channels),
	)

	// render the heatmaps and decoded keypoints over a blank canvas
	img := gocv.NewMatWithSize(256, 256, gocv.MatTypeCV8UC3)
	defer img.Close()

	if err := render.HeatmapOverlay(&img, enc.Heatmaps, gocv.ColormapJet, 0.6); err != nil {
		logger.Fatal("Error rendering heatmap overlay", zap.Error(err))
	}

	// simulate a half precision inference backend
	heatmaps, err := throughFloat16(enc.Heatmaps)

	if err != nil {
		logger.Fatal("Error converting heatmaps", zap.Error(err))
	}

	decoded, scores, err := cdc.Decode(heatmaps, enc.Displacements)

	if err != nil {
		logger.Fatal("Error decoding heatmaps", zap.Error(err))
	}

	render.KeyPointScores(&img, decoded[0], scores[0], 0.1, 2, render.DefaultFont())

	if ok := gocv.IMWrite(*saveFile, img); !ok {
		logger.Fatal("Error writing output image", zap.String("file", *saveFile))
	}

	// measure the encode/decode round trip error
	nme, err := eval.NME(decoded[0], keypoints, 80)

	if err != nil {
		logger.Fatal("Error computing NME", zap.Error(err))
	}

	worst, worstIdx, err := eval.WorstError(decoded[0], keypoints)

	if err != nil {
		logger.Fatal("Error computing worst error", zap.Error(err))
	}

	logger.Info("Round trip accuracy",
		zap.Float64("nme", nme),
		zap.Float64("worstError", worst),
		zap.Int("worstKeypoint", worstIdx),
		zap.String("outputFile", *saveFile),
	)
}

// ringKeypoints generates count keypoints evenly spaced on a circle of the
// given radius centred in a w by h image
func ringKeypoints(w, h, count int, radius float64) []kpcodec.Point {

	pts := make([]kpcodec.Point, count)

	cx, cy := float64(w)/2, float64(h)/2

	for i := range pts {
		angle := 2 * math.Pi * float64(i) / float64(count)
		pts[i] = kpcodec.Point{
			X: float32(cx + radius*math.Cos(angle)),
			Y: float32(cy + radius*math.Sin(angle)),
		}
	}

	return pts
}

// throughFloat16 round trips a tensor through float16 precision the way a
// half precision model output buffer would arrive
func throughFloat16(t *kpcodec.Tensor) (*kpcodec.Tensor, error) {

	buf := make([]uint16, len(t.Data))

	for i, v := range t.Data {
		buf[i] = float16.Fromfloat32(v).Bits()
	}

	return kpcodec.TensorFromFloat16(buf, t.Channels, t.Height, t.Width)
}
